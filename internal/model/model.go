// Package model defines the domain entities and the request/response
// types exchanged with the HTTP layer.
//
// Request types carry `validate` tags enforced through the validation
// package before any service logic runs. Update requests use pointer
// fields so a partial payload can distinguish "absent" from "set to
// zero value"; absent fields never overwrite stored values.
package model

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance used by all request types.
// validator.Validate caches struct metadata, so a single instance is
// both safe for concurrent use and faster than constructing per call.
var validate = validator.New()
