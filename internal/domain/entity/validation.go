package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length bounds, counted in Unicode code points.
const (
	TitleMinLength        = 5
	TitleMaxLength        = 50
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
)

// ValidateTitle checks that an article title is between TitleMinLength and
// TitleMaxLength characters, inclusive.
func ValidateTitle(title string) error {
	if n := text.CountRunes(title); n < TitleMinLength || n > TitleMaxLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", TitleMinLength, TitleMaxLength, n),
		}
	}
	return nil
}

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between
// MagazineNameMinLength and MagazineNameMaxLength characters, inclusive.
func ValidateMagazineName(name string) error {
	if n := text.CountRunes(name); n < MagazineNameMinLength || n > MagazineNameMaxLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", MagazineNameMinLength, MagazineNameMaxLength, n),
		}
	}
	return nil
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "must be a non-empty string"}
	}
	return nil
}
