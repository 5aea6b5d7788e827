package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrLoadInProgress = errors.New("vocabulary load in progress")
	ErrVocabularyLoad = errors.New("vocabulary load failed")
	ErrTagger         = errors.New("tagger failed")
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

// VocabularyLoadError reports a failed word list retrieval: the source was
// unreachable, answered with a non-success status, or did not parse.
type VocabularyLoadError struct {
	Level string
	Path  string
	Err   error
}

func (e *VocabularyLoadError) Error() string {
	if e.Level != "" {
		return fmt.Sprintf("load vocabulary %q (%s): %v", e.Level, e.Path, e.Err)
	}
	return fmt.Sprintf("load vocabulary %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrVocabularyLoad and the underlying cause.
func (e *VocabularyLoadError) Unwrap() []error {
	return []error{ErrVocabularyLoad, e.Err}
}
