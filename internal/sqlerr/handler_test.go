package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/haleview/clinic-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"08006", ConnectionFailure},
		{"08000", ConnectionFailure},
		{"42601", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.sqlstate, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCode(tt.sqlstate))
		})
	}
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityPanic, MapSeverity("PANIC"))
	assert.Equal(t, SeverityWarning, MapSeverity("NOTICE"))
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityError, MapSeverity(""))
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", TableName: "patients"}
	converted := ConvertPgError(pgErr)

	assert.Equal(t, UniqueViolation, ErrCode(converted))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("creating patient: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("nope")))
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"patients", UniqueViolation, "PATIENT_ALREADY_EXISTS"},
		{"appointments", ForeignKeyViolation, "APPOINTMENT_NOT_FOUND"},
		{"patients", NotNullViolation, "PATIENT_REQUIRED"},
		{"appointments", CheckViolation, "APPOINTMENT_INVALID"},
		{"patients", Other, "PATIENT_ERROR"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, generateErrorCode(tt.table, tt.code))
		})
	}
}

func TestGetEntityName(t *testing.T) {
	// A column ending in _id names the referenced entity; otherwise the
	// singularized table name wins.
	assert.Equal(t, "Patient", getEntityName("appointments", "patient_id"))
	assert.Equal(t, "Appointment", getEntityName("appointments", ""))
	assert.Equal(t, "Patient", getEntityName("patients", "email"))
	assert.Equal(t, "record", getEntityName("", ""))
}

func TestHumanizeText(t *testing.T) {
	assert.Equal(t, "First Name", humanizeText("first_name"))
	assert.Equal(t, "Email", humanizeText("email"))
	assert.Equal(t, "", humanizeText(""))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"patients_email_key", "email"},
		{"patients_email_ukey", "email"},
		{"unique_patients_email", "email"},
		{"patients_pkey", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint))
		})
	}
}

func TestHandleErrorPassesThroughHTTPErrors(t *testing.T) {
	in := errs.NewNotFoundError("Patient not found", true, nil)
	assert.Same(t, in, HandleError(in).(*errs.HTTPError))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        `duplicate key value violates unique constraint "patients_email_key"`,
		TableName:      "patients",
		ConstraintName: "patients_email_key",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PATIENT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Patient with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		Message:        `insert or update on table "appointments" violates foreign key constraint "appointments_patient_id_fkey"`,
		TableName:      "appointments",
		ConstraintName: "appointments_patient_id_fkey",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "APPOINTMENT_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Appointment does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		Message:    `null value in column "email" violates not-null constraint`,
		TableName:  "patients",
		ColumnName: "email",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PATIENT_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Email is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "email", Error: "is required"}, httpErr.Errors[0])
}

func TestHandleErrorCheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23514",
		Severity:       "ERROR",
		Message:        `new row for relation "appointments" violates check constraint "appointments_status_check"`,
		TableName:      "appointments",
		ConstraintName: "appointments_status_check",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "APPOINTMENT_INVALID", httpErr.Code)
}

func TestHandleErrorUnknownPgError(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:     "42601",
		Severity: "ERROR",
		Message:  "syntax error at or near \"SELEC\"",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	// Server-side details must never reach the client.
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "SELEC")
}

func TestHandleErrorNoRows(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows, fmt.Errorf("loading patient: %w", pgx.ErrNoRows)} {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, HandleError(err), &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(errors.New("connection reset")), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}
