package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrImmutableAttribute indicates a write to an attribute that is fixed at construction
	ErrImmutableAttribute = errors.New("attribute is immutable")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ImmutableAttributeError is returned when a caller tries to write an attribute
// that has no setter, such as an article title or an author name.
// It is distinct from ValidationError: the value is not the problem, the write is.
type ImmutableAttributeError struct {
	Entity    string
	Attribute string
}

// Error returns a formatted error message for the immutable attribute error.
func (e *ImmutableAttributeError) Error() string {
	return fmt.Sprintf("can't set attribute '%s' of %s: attribute is immutable", e.Attribute, e.Entity)
}

// Is reports whether target is ErrImmutableAttribute.
func (e *ImmutableAttributeError) Is(target error) bool {
	return target == ErrImmutableAttribute
}

// RejectImmutableWrite returns an ImmutableAttributeError for the given attribute.
// Attribute-patch surfaces call it when a request names a read-only attribute.
func RejectImmutableWrite(entity, attribute string) error {
	return &ImmutableAttributeError{Entity: entity, Attribute: attribute}
}
