package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// Site lifecycle failures. Callers surface these and let the user retry;
	// nothing in the lifecycle retries on its own.
	ErrGenerationFailed = errors.New("generation failed")
	ErrSaveFailed       = errors.New("save failed")
	ErrUnpublishFailed  = errors.New("unpublish failed")
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Partial write stages.
const (
	StagePublicWrite = "public_write"
	StageOwnerWrite  = "owner_write"
)

// PartialWriteError reports that a multi-record operation stopped after its
// first record was written. Op is "save" or "unpublish"; Stage names the write
// that failed. The error matches ErrSaveFailed or ErrUnpublishFailed (by Op)
// and the underlying cause.
type PartialWriteError struct {
	Op     string
	Stage  string
	SiteID uuid.UUID
	Err    error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%s site %s: partial write, %s failed: %v", e.Op, e.SiteID, e.Stage, e.Err)
}

func (e *PartialWriteError) Unwrap() []error {
	kind := ErrSaveFailed
	if e.Op == "unpublish" {
		kind = ErrUnpublishFailed
	}
	return []error{kind, e.Err}
}
