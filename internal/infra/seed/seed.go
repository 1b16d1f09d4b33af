// Package seed loads catalog scenarios from YAML and applies them through the
// catalog use case, in document order.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/usecase/catalog"
)

// Sentinel errors for scenario loading.
var (
	// ErrDuplicateKey indicates that two entries of the same kind share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownKey indicates a reference to a key that was not declared earlier.
	ErrUnknownKey = errors.New("unknown key")
)

// Scenario is a declarative description of a catalog.
type Scenario struct {
	Authors   []AuthorSpec   `yaml:"authors"`
	Magazines []MagazineSpec `yaml:"magazines"`
	Articles  []ArticleSpec  `yaml:"articles"`
	Relinks   []RelinkSpec   `yaml:"relinks"`
}

// AuthorSpec declares an author under a scenario-local key.
type AuthorSpec struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// MagazineSpec declares a magazine under a scenario-local key.
type MagazineSpec struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSpec declares an article. Key is optional and only needed when a
// relink refers to the article.
type ArticleSpec struct {
	Key      string `yaml:"key,omitempty"`
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// RelinkSpec re-points a keyed article. Empty Author or Magazine leaves that side alone.
type RelinkSpec struct {
	Article  string `yaml:"article"`
	Author   string `yaml:"author,omitempty"`
	Magazine string `yaml:"magazine,omitempty"`
}

// Result maps scenario keys to the IDs the catalog assigned.
type Result struct {
	Authors   map[string]uuid.UUID
	Magazines map[string]uuid.UUID
	Articles  map[string]uuid.UUID
}

// Catalog is the subset of catalog.Service a scenario needs.
type Catalog interface {
	CreateAuthor(ctx context.Context, in catalog.CreateAuthorInput) (catalog.AuthorView, error)
	CreateMagazine(ctx context.Context, in catalog.CreateMagazineInput) (catalog.MagazineView, error)
	PublishArticle(ctx context.Context, in catalog.PublishArticleInput) (catalog.ArticleView, error)
	UpdateArticle(ctx context.Context, in catalog.UpdateArticleInput) error
}

// Parse decodes a scenario. Unknown fields are rejected; empty input is an empty scenario.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return &sc, nil
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &sc, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sc, nil
}

// Apply creates the scenario's authors, magazines and articles, then runs its
// relinks. It stops at the first error; entities created before it remain.
func Apply(ctx context.Context, c Catalog, sc *Scenario) (*Result, error) {
	res := &Result{
		Authors:   make(map[string]uuid.UUID, len(sc.Authors)),
		Magazines: make(map[string]uuid.UUID, len(sc.Magazines)),
		Articles:  make(map[string]uuid.UUID, len(sc.Articles)),
	}

	for i, spec := range sc.Authors {
		if _, ok := res.Authors[spec.Key]; ok {
			return res, fmt.Errorf("authors[%d]: author %q: %w", i, spec.Key, ErrDuplicateKey)
		}
		a, err := c.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: spec.Name})
		if err != nil {
			return res, fmt.Errorf("authors[%d]: %w", i, err)
		}
		res.Authors[spec.Key] = a.ID
	}

	for i, spec := range sc.Magazines {
		if _, ok := res.Magazines[spec.Key]; ok {
			return res, fmt.Errorf("magazines[%d]: magazine %q: %w", i, spec.Key, ErrDuplicateKey)
		}
		m, err := c.CreateMagazine(ctx, catalog.CreateMagazineInput{Name: spec.Name, Category: spec.Category})
		if err != nil {
			return res, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		res.Magazines[spec.Key] = m.ID
	}

	for i, spec := range sc.Articles {
		if spec.Key != "" {
			if _, ok := res.Articles[spec.Key]; ok {
				return res, fmt.Errorf("articles[%d]: article %q: %w", i, spec.Key, ErrDuplicateKey)
			}
		}
		authorID, err := lookup(res.Authors, "author", spec.Author)
		if err != nil {
			return res, fmt.Errorf("articles[%d]: %w", i, err)
		}
		magazineID, err := lookup(res.Magazines, "magazine", spec.Magazine)
		if err != nil {
			return res, fmt.Errorf("articles[%d]: %w", i, err)
		}
		art, err := c.PublishArticle(ctx, catalog.PublishArticleInput{
			AuthorID:   authorID,
			MagazineID: magazineID,
			Title:      spec.Title,
		})
		if err != nil {
			return res, fmt.Errorf("articles[%d]: %w", i, err)
		}
		if spec.Key != "" {
			res.Articles[spec.Key] = art.ID
		}
	}

	for i, spec := range sc.Relinks {
		articleID, err := lookup(res.Articles, "article", spec.Article)
		if err != nil {
			return res, fmt.Errorf("relinks[%d]: %w", i, err)
		}
		in := catalog.UpdateArticleInput{ID: articleID}
		if spec.Author != "" {
			id, err := lookup(res.Authors, "author", spec.Author)
			if err != nil {
				return res, fmt.Errorf("relinks[%d]: %w", i, err)
			}
			in.AuthorID = &id
		}
		if spec.Magazine != "" {
			id, err := lookup(res.Magazines, "magazine", spec.Magazine)
			if err != nil {
				return res, fmt.Errorf("relinks[%d]: %w", i, err)
			}
			in.MagazineID = &id
		}
		if err := c.UpdateArticle(ctx, in); err != nil {
			return res, fmt.Errorf("relinks[%d]: %w", i, err)
		}
	}

	return res, nil
}

func lookup(keys map[string]uuid.UUID, kind, key string) (uuid.UUID, error) {
	id, ok := keys[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("%s %q: %w", kind, key, ErrUnknownKey)
	}
	return id, nil
}
