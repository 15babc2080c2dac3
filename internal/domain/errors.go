package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrExpired       = errors.New("expired")

	// ErrTransient marks storage contention (serialization failure, deadlock,
	// lock timeout). It is the only retryable error kind.
	ErrTransient = errors.New("transient error")
)

// Specific conflicts. Each one matches ErrConflict via errors.Is.
var (
	ErrLastOwner            = &KindError{Kind: ErrConflict, Message: "cannot demote the last owner"}
	ErrLastOwnerRemoval     = &KindError{Kind: ErrConflict, Message: "cannot remove the last owner"}
	ErrAlreadyMember        = &KindError{Kind: ErrConflict, Message: "user is already a member of this household"}
	ErrInvitationExists     = &KindError{Kind: ErrConflict, Message: "invitation already exists"}
	ErrInvitationNotPending = &KindError{Kind: ErrConflict, Message: "invitation is no longer valid/pending"}
	ErrInvitationExpired    = &KindError{Kind: ErrExpired, Message: "invitation has expired"}
)

// KindError is an error with a human-readable message that classifies as one
// of the sentinel kinds above.
type KindError struct {
	Kind    error
	Message string
}

func (e *KindError) Error() string { return e.Message }

func (e *KindError) Unwrap() error { return e.Kind }

// IsRetryable reports whether err is worth retrying unchanged.
// Permission, validation and state errors are permanent.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}

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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
