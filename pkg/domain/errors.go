// Package domain defines the entities and error taxonomy shared by every
// surface. The persistence and query layer never logs or prints; it
// returns these typed errors for the calling surface to translate into
// an HTTP status, an error banner, or a retry prompt.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("resource not found")
	// ErrConstraintViolation is returned when an insert would break a
	// uniqueness, required-field, or referential-integrity rule.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrInvalidDate is returned when a date string does not parse as
	// YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrValidation is returned when input is malformed, e.g. an amount
	// that does not parse or an out-of-range selection.
	ErrValidation = errors.New("validation error")
)

// ConstraintError identifies the field that violated a constraint.
// It matches ErrConstraintViolation under errors.Is.
type ConstraintError struct {
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation on %s: %s", e.Field, e.Reason)
}

func (e *ConstraintError) Unwrap() error { return ErrConstraintViolation }

// NewConstraintError builds a ConstraintError for the given field.
func NewConstraintError(field, reason string) *ConstraintError {
	return &ConstraintError{Field: field, Reason: reason}
}
