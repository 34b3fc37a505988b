// Package errors provides custom error types for store-related operations.
package errors

import "errors"

var ErrStoreNotFound = errors.New("store not found")
var ErrStoreSave = errors.New("failed to save store")
var ErrStoreDelete = errors.New("failed to delete store")
var ErrStoreFind = errors.New("failed to find store")

// ErrInvalidField is returned when a dynamic filter or sort clause references
// a field outside the whitelist. No query is executed in that case.
var ErrInvalidField = errors.New("invalid field")

// ValidationError is a business rule violation. Message is safe to show to
// clients; Technical optionally carries extra diagnostic detail.
type ValidationError struct {
	Message   string
	Technical string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a user-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
