package service

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialNotFound   = errors.New("credential not found")
	ErrEmailAccountNotFound = errors.New("email account not found")
	ErrCreditCardNotFound   = errors.New("credit card not found")
	ErrDeviceNotFound       = errors.New("device not found")

	// ErrParentNotFound is returned when an owned record names a user that
	// does not exist.
	ErrParentNotFound = errors.New("owning user not found")

	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrUserHasDependents = errors.New("user has dependent records")
	ErrInvalidInput      = errors.New("invalid input")
)

// FieldError describes one rejected field, named as it appears on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
