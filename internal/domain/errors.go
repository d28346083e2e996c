// Package domain defines the core types and errors shared by the card renderer.
package domain

import "fmt"

// ShapeError indicates a column table that is not a set of equal-length sequences.
type ShapeError struct {
	Message string
	Field   string
}

func (e *ShapeError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrShape creates a ShapeError for field with a formatted message.
func ErrShape(field, format string, args ...interface{}) *ShapeError {
	return &ShapeError{Message: fmt.Sprintf(format, args...), Field: field}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
