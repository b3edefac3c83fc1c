// Package services contains the business logic layer between the HTTP
// handlers and the catalog.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory indicates a filter referenced a category outside
	// the closed category set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownComplexity indicates a filter referenced a complexity tier
	// that does not exist.
	ErrUnknownComplexity = errors.New("unknown complexity")

	// ErrNoContent indicates a workflow has neither inline JSON nor a
	// remote document URL to download.
	ErrNoContent = errors.New("workflow has no downloadable content")
)

// ValidationError wraps a request-level validation failure with the field
// that caused it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// IsValidationError checks if an error is a request validation failure.
func IsValidationError(err error) bool {
	var target *ValidationError

	return errors.As(err, &target)
}
