// Package entity defines the core domain entities and validation logic for the catalog.
// Authors and magazines are linked many-to-many through articles; every mutation
// that creates or re-points an article keeps both sides of the association consistent.
//
// Entities are not safe for concurrent use. The catalog use case serializes access.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Article is the join entity between one Author and one Magazine.
// Its title is fixed at construction; author and magazine may be reassigned.
type Article struct {
	id       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle validates its arguments and then registers the new article on the
// author, the magazine and the magazine's registry. Nothing is mutated on failure.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "must be an Author"}
	}
	if err := validateMagazineRef(magazine); err != nil {
		return nil, err
	}

	art := &Article{
		id:       uuid.New(),
		title:    title,
		author:   author,
		magazine: magazine,
	}
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	magazine.registry.articles = append(magazine.registry.articles, art)
	return art, nil
}

// ID returns the identifier assigned at construction.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article title. There is no setter.
func (a *Article) Title() string { return a.title }

// Author returns the current author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the current magazine.
func (a *Article) Magazine() *Magazine { return a.magazine }

// SetAuthor moves the article from its current author's list to the new author's
// list and then updates the reference. A nil author is rejected before any change.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Message: "must be an Author"}
	}
	if author == a.author {
		return nil
	}

	// The old author may have dropped the article already via RemoveArticle.
	a.author.articles, _ = removeArticle(a.author.articles, a)
	author.articles = append(author.articles, a)
	a.author = author
	return nil
}

// SetMagazine moves the article from its current magazine's list to the new
// magazine's list and then updates the reference. The new magazine must belong
// to the same registry as the current one.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := validateMagazineRef(magazine); err != nil {
		return err
	}
	if magazine.registry != a.magazine.registry {
		return &ValidationError{Field: "magazine", Message: "must belong to the same registry"}
	}
	if magazine == a.magazine {
		return nil
	}

	a.magazine.articles, _ = removeArticle(a.magazine.articles, a)
	magazine.articles = append(magazine.articles, a)
	a.magazine = magazine
	return nil
}

func validateMagazineRef(m *Magazine) error {
	if m == nil {
		return &ValidationError{Field: "magazine", Message: "must be a Magazine"}
	}
	if m.registry == nil {
		return &ValidationError{Field: "magazine", Message: "must be created through a Registry"}
	}
	return nil
}

// removeArticle deletes the first occurrence of art from list.
func removeArticle(list []*Article, art *Article) ([]*Article, bool) {
	i := slices.Index(list, art)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}
