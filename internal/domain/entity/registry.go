package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Registry tracks every magazine and article created through it, in insertion
// order. Entries are only dropped by Reset, so a long-lived registry grows
// with every construction.
type Registry struct {
	magazines []*Magazine
	articles  []*Article
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewMagazine validates name and category, then creates and registers a magazine.
// Returns a ValidationError if name is not 2 to 16 characters or category is empty.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	m := &Magazine{
		id:       uuid.New(),
		name:     name,
		category: category,
		registry: r,
	}
	r.magazines = append(r.magazines, m)
	return m, nil
}

// Magazines returns the registered magazines in construction order.
func (r *Registry) Magazines() []*Magazine {
	return slices.Clone(r.magazines)
}

// Articles returns the registered articles in construction order.
func (r *Registry) Articles() []*Article {
	return slices.Clone(r.articles)
}

// TopPublisher returns the magazine with the most articles, or nil if no
// magazine is registered. Ties go to the magazine constructed first.
func (r *Registry) TopPublisher() *Magazine {
	var top *Magazine
	for _, m := range r.magazines {
		if top == nil || len(m.articles) > len(top.articles) {
			top = m
		}
	}
	return top
}

// Reset forgets every registered magazine and article.
// Entities created before the reset must not be used with the registry afterwards.
func (r *Registry) Reset() {
	r.magazines = nil
	r.articles = nil
}
