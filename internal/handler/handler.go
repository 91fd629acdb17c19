// Package handler is the HTTP layer, the first entry point for
// business logic after the router.
//
// It binds and validates incoming payloads using the validation
// package, calls the appropriate service, and writes the response.
// Every endpoint runs through the shared pipeline in base.go so
// logging, tracing, and error handling stay uniform.
package handler
