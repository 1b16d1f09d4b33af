package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "title length",
			field:    "title",
			message:  "must be between 5 and 50 characters, got 4",
			expected: "validation error on field 'title': must be between 5 and 50 characters, got 4",
		},
		{
			name:     "empty category",
			field:    "category",
			message:  "must be a non-empty string",
			expected: "validation error on field 'category': must be a non-empty string",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	var err error = &ValidationError{Field: "name", Message: "must be a non-empty string"}

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrImmutableAttribute)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestValidationError_As_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create magazine: %w", &ValidationError{Field: "name", Message: "too long"})

	var valErr *ValidationError
	if assert.True(t, errors.As(wrapped, &valErr)) {
		assert.Equal(t, "name", valErr.Field)
		assert.Equal(t, "too long", valErr.Message)
	}
	assert.ErrorIs(t, wrapped, ErrValidationFailed)
}

func TestImmutableAttributeError(t *testing.T) {
	err := RejectImmutableWrite("Article", "title")

	assert.EqualError(t, err, "can't set attribute 'title' of Article: attribute is immutable")
	assert.ErrorIs(t, err, ErrImmutableAttribute)
	assert.NotErrorIs(t, err, ErrValidationFailed)

	var immErr *ImmutableAttributeError
	if assert.ErrorAs(t, err, &immErr) {
		assert.Equal(t, "Article", immErr.Entity)
		assert.Equal(t, "title", immErr.Attribute)
	}

	var valErr *ValidationError
	assert.False(t, errors.As(err, &valErr), "immutable write must not look like a validation error")
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"not found", ErrNotFound, "entity not found"},
		{"invalid input", ErrInvalidInput, "invalid input"},
		{"validation failed", ErrValidationFailed, "validation failed"},
		{"immutable attribute", ErrImmutableAttribute, "attribute is immutable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
		})
	}
}
