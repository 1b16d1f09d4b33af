// Package catalog provides use cases for the author/magazine/article model.
// It serializes every operation behind one lock, indexes entities by ID and
// hands callers immutable views instead of live entities.
package catalog

import (
	"errors"
	"fmt"

	"magazine-catalog/internal/domain/entity"
)

// Sentinel errors for catalog use case operations.
// The not-found errors wrap entity.ErrNotFound.
var (
	// ErrAuthorNotFound indicates that no author has the requested ID.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)

	// ErrMagazineNotFound indicates that no magazine has the requested ID.
	ErrMagazineNotFound = fmt.Errorf("magazine: %w", entity.ErrNotFound)

	// ErrArticleNotFound indicates that no article has the requested ID.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)

	// ErrInvalidID indicates that the zero UUID was passed as an ID.
	ErrInvalidID = errors.New("invalid ID")
)
