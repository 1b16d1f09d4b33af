package entity

import (
	"slices"

	"github.com/google/uuid"
)

// ContributingAuthorMinArticles is the article count an author needs in one
// magazine to count as a contributing author of it.
const ContributingAuthorMinArticles = 3

// Magazine is a publication with a mutable name and category.
// Magazines are created through a Registry and stay registered on it.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	articles []*Article
	registry *Registry
}

// ID returns the identifier assigned at construction.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine name.
func (m *Magazine) Name() string { return m.name }

// SetName renames the magazine. The name is unchanged on a ValidationError.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine category.
func (m *Magazine) Category() string { return m.category }

// SetCategory changes the category. The category is unchanged on a ValidationError.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// Registry returns the registry the magazine was created on.
func (m *Magazine) Registry() *Registry { return m.registry }

// Articles returns a copy of the magazine's articles in insertion order.
func (m *Magazine) Articles() []*Article {
	return slices.Clone(m.articles)
}

// Contributors returns the distinct authors of this magazine's articles,
// in order of first appearance.
func (m *Magazine) Contributors() []*Author {
	var out []*Author
	seen := make(map[*Author]struct{}, len(m.articles))
	for _, art := range m.articles {
		if _, ok := seen[art.author]; ok {
			continue
		}
		seen[art.author] = struct{}{}
		out = append(out, art.author)
	}
	return out
}

// ArticleTitles returns the titles of this magazine's articles, or nil if it has none.
func (m *Magazine) ArticleTitles() []string {
	if len(m.articles) == 0 {
		return nil
	}
	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than two articles in this
// magazine, in order of first appearance, or nil if no author qualifies.
func (m *Magazine) ContributingAuthors() []*Author {
	counts := make(map[*Author]int, len(m.articles))
	for _, art := range m.articles {
		counts[art.author]++
	}

	var out []*Author
	for _, author := range m.Contributors() {
		if counts[author] >= ContributingAuthorMinArticles {
			out = append(out, author)
		}
	}
	return out
}
