package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Everything in this list is an
// expected business outcome that propagates unchanged to the caller; any
// other error is an internal fault.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrPhaseClosed       = errors.New("operation not permitted in current phase")
	ErrPhaseTooEarly     = errors.New("phase too early")
	ErrQuotaExceeded     = errors.New("nomination quota exceeded")
	ErrAlreadyNominated  = errors.New("already nominated")
	ErrGameNotEligible   = errors.New("game not eligible")
	ErrGameNotFinalist   = errors.New("game is not a finalist")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
