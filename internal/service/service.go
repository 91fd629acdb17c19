// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies domain rules
// such as pagination defaults, status defaulting, and existence
// checks, and calls store methods to read and write records.
package service
