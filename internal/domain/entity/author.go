package entity

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Author is a writer whose name is fixed at construction.
// It tracks the articles it is currently the author of, in insertion order.
type Author struct {
	id       uuid.UUID
	name     string
	articles []*Article
}

// NewAuthor returns an author with no articles.
// Returns a ValidationError if name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: uuid.New(), name: name}, nil
}

// ID returns the identifier assigned at construction.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author name. There is no setter.
func (a *Author) Name() string { return a.name }

// Articles returns a copy of the author's articles in insertion order.
func (a *Author) Articles() []*Article {
	return slices.Clone(a.articles)
}

// Magazines returns the distinct magazines this author has written for,
// in order of first appearance.
func (a *Author) Magazines() []*Magazine {
	var out []*Magazine
	seen := make(map[*Magazine]struct{}, len(a.articles))
	for _, art := range a.articles {
		if _, ok := seen[art.magazine]; ok {
			continue
		}
		seen[art.magazine] = struct{}{}
		out = append(out, art.magazine)
	}
	return out
}

// AddArticle creates a new article by this author in the given magazine.
// Validation errors from NewArticle are returned unchanged.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines this author has
// written for, or nil if the author has no articles.
func (a *Author) TopicAreas() []string {
	if len(a.articles) == 0 {
		return nil
	}
	out := make([]string, 0, len(a.articles))
	seen := make(map[string]struct{}, len(a.articles))
	for _, art := range a.articles {
		category := art.magazine.category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

// RemoveArticle drops article from this author's list only.
// The article keeps its author reference and stays on its magazine.
// Returns an error wrapping ErrNotFound if the article is not in the list.
func (a *Author) RemoveArticle(article *Article) error {
	var ok bool
	a.articles, ok = removeArticle(a.articles, article)
	if !ok {
		return fmt.Errorf("remove article from author %q: %w", a.name, ErrNotFound)
	}
	return nil
}
