// Package errs defines the error types the API surfaces to callers.
//
// Every failure in the service is eventually expressed as an *HTTPError:
// validation failures, missing records, uniqueness conflicts, and store
// failures all share one shape so clients receive consistent, actionable
// error payloads.
package errs
