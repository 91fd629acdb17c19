// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every store error is converted at this boundary via sqlerr.HandleError,
// so callers only ever see application errors (not found, conflict,
// validation, internal) rather than driver errors.
package repository
