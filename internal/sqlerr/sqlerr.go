// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them into
// application errors with stable machine codes and user-friendly messages
// (e.g. a unique violation on patients.email becomes a
// "PATIENT_ALREADY_EXISTS" conflict).
package sqlerr
