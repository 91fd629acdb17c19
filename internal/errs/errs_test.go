package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Validation failed", false, nil, nil, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Validation failed", err.Message)
	assert.False(t, err.Override)
	assert.Nil(t, err.Errors)
	assert.Nil(t, err.Action)
}

func TestNewBadRequestErrorCustomCodeAndFields(t *testing.T) {
	code := "PATIENT_REQUIRED"
	fields := []FieldError{{Field: "email", Error: "is required"}}
	action := &Action{Type: ActionTypeRedirect, Message: "See the docs", Value: "/docs"}

	err := NewBadRequestError("The Email is required", true, &code, fields, action)

	assert.Equal(t, "PATIENT_REQUIRED", err.Code)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
	assert.Equal(t, action, err.Action)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Patient not found", true, nil)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)

	code := "PATIENT_NOT_FOUND"
	assert.Equal(t, "PATIENT_NOT_FOUND", NewNotFoundError("Patient not found", true, &code).Code)
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("A patient with this email is already registered", true, nil)

	// Conflicts surface as 400 in the API contract, distinguished by code.
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "CONFLICT", err.Code)
	assert.True(t, err.Override)

	code := "PATIENT_ALREADY_EXISTS"
	assert.Equal(t, "PATIENT_ALREADY_EXISTS", NewConflictError("exists", true, &code).Code)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.False(t, err.Override)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("email is malformed"))

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: email is malformed", err.Message)
}

func TestHTTPErrorError(t *testing.T) {
	var err error = NewNotFoundError("Patient not found", true, nil)
	assert.Equal(t, "Patient not found", err.Error())
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewConflictError("exists", true, nil)

	// Matches any *HTTPError regardless of code or status.
	assert.ErrorIs(t, err, &HTTPError{})
	assert.ErrorIs(t, fmt.Errorf("creating patient: %w", err), &HTTPError{})
	assert.NotErrorIs(t, errors.New("exists"), &HTTPError{})
}

func TestWithMessage(t *testing.T) {
	code := "PATIENT_ALREADY_EXISTS"
	original := NewConflictError("A Patient with this identifier already exists", true, &code)

	replaced := original.WithMessage("A Patient with this Email already exists")

	require.NotSame(t, original, replaced)
	assert.Equal(t, "A Patient with this Email already exists", replaced.Message)
	assert.Equal(t, original.Code, replaced.Code)
	assert.Equal(t, original.Status, replaced.Status)
	assert.Equal(t, original.Override, replaced.Override)
	assert.Equal(t, "A Patient with this identifier already exists", original.Message)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("ok"))
}
