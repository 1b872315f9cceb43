package grading

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	ErrValidation      = errors.New("validation error")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrEmptyValue      = errors.New("value cannot be empty")

	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student already exists")
)

// ValidationError is the single domain-level failure kind: a supplied value
// was rejected at the boundary. It is always recoverable by the caller
// (re-prompt, skip, or log and continue) and never aborts the program.
type ValidationError struct {
	Op      string // operation that rejected the value, e.g. "AddGrade"
	Kind    error  // base error type for errors.Is() checking
	Message string // human-readable message
	Value   any    // the offending value
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("grading.%s: %s (got %v)", e.Op, e.Message, e.Value)
	}
	return fmt.Sprintf("grading.%s: %s", e.Op, e.Message)
}

// Unwrap returns the base error for errors.Unwrap().
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Is implements errors.Is() matching. Every ValidationError matches
// ErrValidation in addition to its own kind.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// NewValidationError creates a new validation error.
func NewValidationError(op string, kind error, message string, value any) *ValidationError {
	return &ValidationError{
		Op:      op,
		Kind:    kind,
		Message: message,
		Value:   value,
	}
}

// IsValidation checks if the error is a domain validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrEmptyValue)
}

// IsNotFound checks if the error is a "student not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound)
}
