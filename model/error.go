// Package model provides the contact book data model.
package model

import "errors"

// ErrRecordNotFound is returned by stores when a contact does not exist.
var ErrRecordNotFound = errors.New("record not found")

// ValidationError represents a rejected field value or record operation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError is a helper that constructs a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
