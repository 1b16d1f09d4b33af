package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/metrics"
)

// CreateAuthorInput represents the input parameters for creating a new author.
type CreateAuthorInput struct {
	Name string
}

// CreateMagazineInput represents the input parameters for creating a new magazine.
type CreateMagazineInput struct {
	Name     string
	Category string
}

// PublishArticleInput represents the input parameters for publishing a new article.
type PublishArticleInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// UpdateAuthorInput represents a patch of an author.
// Name is read-only; setting it is rejected with an ImmutableAttributeError.
type UpdateAuthorInput struct {
	ID   uuid.UUID
	Name *string
}

// UpdateMagazineInput represents a patch of a magazine.
// Fields with nil values will not be updated.
type UpdateMagazineInput struct {
	ID       uuid.UUID
	Name     *string
	Category *string
}

// UpdateArticleInput represents a patch of an article.
// Title is read-only; AuthorID and MagazineID re-point the article.
type UpdateArticleInput struct {
	ID         uuid.UUID
	Title      *string
	AuthorID   *uuid.UUID
	MagazineID *uuid.UUID
}

// CreateAuthor creates a new author with no articles.
// Returns a ValidationError if the name is empty.
func (s *Service) CreateAuthor(ctx context.Context, in CreateAuthorInput) (AuthorView, error) {
	var out AuthorView
	err := s.run(ctx, "create_author", nil, func() error {
		a, err := entity.NewAuthor(in.Name)
		if err != nil {
			return fmt.Errorf("create author: %w", err)
		}
		s.indexAuthor(a)
		out = authorView(a)
		return nil
	})
	return out, err
}

// CreateMagazine creates and registers a new magazine.
// Returns a ValidationError if the name is not 2 to 16 characters or the category is empty.
func (s *Service) CreateMagazine(ctx context.Context, in CreateMagazineInput) (MagazineView, error) {
	var out MagazineView
	err := s.run(ctx, "create_magazine", nil, func() error {
		m, err := s.registry.NewMagazine(in.Name, in.Category)
		if err != nil {
			return fmt.Errorf("create magazine: %w", err)
		}
		s.magazines[m.ID()] = m
		out = magazineView(m)
		return nil
	})
	return out, err
}

// PublishArticle creates an article linking an existing author and magazine.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unknown IDs and a
// ValidationError if the title is not 5 to 50 characters.
func (s *Service) PublishArticle(ctx context.Context, in PublishArticleInput) (ArticleView, error) {
	var out ArticleView
	attrs := []attribute.KeyValue{
		attribute.String("author.id", in.AuthorID.String()),
		attribute.String("magazine.id", in.MagazineID.String()),
	}
	err := s.run(ctx, "publish_article", attrs, func() error {
		author, err := s.author(in.AuthorID)
		if err != nil {
			return fmt.Errorf("publish article: %w", err)
		}
		magazine, err := s.magazine(in.MagazineID)
		if err != nil {
			return fmt.Errorf("publish article: %w", err)
		}
		art, err := author.AddArticle(magazine, in.Title)
		if err != nil {
			return fmt.Errorf("publish article: %w", err)
		}
		s.articles[art.ID()] = art
		out = articleView(art)
		return nil
	})
	return out, err
}

// UpdateAuthor applies a patch to an author.
// Authors have no writable attributes, so a non-nil Name is always rejected
// with an ImmutableAttributeError.
func (s *Service) UpdateAuthor(ctx context.Context, in UpdateAuthorInput) error {
	return s.run(ctx, "update_author", idAttr("author.id", in.ID), func() error {
		if _, err := s.author(in.ID); err != nil {
			return fmt.Errorf("update author: %w", err)
		}
		if in.Name != nil {
			return fmt.Errorf("update author: %w", entity.RejectImmutableWrite("Author", "name"))
		}
		return nil
	})
}

// UpdateMagazine applies a patch to a magazine.
// Every provided field is validated before any is written, so a rejected
// patch leaves the magazine unchanged.
func (s *Service) UpdateMagazine(ctx context.Context, in UpdateMagazineInput) error {
	return s.run(ctx, "update_magazine", idAttr("magazine.id", in.ID), func() error {
		m, err := s.magazine(in.ID)
		if err != nil {
			return fmt.Errorf("update magazine: %w", err)
		}

		if in.Name != nil {
			if err := entity.ValidateMagazineName(*in.Name); err != nil {
				return fmt.Errorf("update magazine: %w", err)
			}
		}
		if in.Category != nil {
			if err := entity.ValidateCategory(*in.Category); err != nil {
				return fmt.Errorf("update magazine: %w", err)
			}
		}

		if in.Name != nil {
			if err := m.SetName(*in.Name); err != nil {
				return fmt.Errorf("update magazine: %w", err)
			}
		}
		if in.Category != nil {
			if err := m.SetCategory(*in.Category); err != nil {
				return fmt.Errorf("update magazine: %w", err)
			}
		}
		return nil
	})
}

// UpdateArticle applies a patch to an article.
// A non-nil Title is rejected with an ImmutableAttributeError. AuthorID and
// MagazineID are resolved before either relink happens, so an unknown ID
// leaves the article and every collection unchanged.
func (s *Service) UpdateArticle(ctx context.Context, in UpdateArticleInput) error {
	return s.run(ctx, "update_article", idAttr("article.id", in.ID), func() error {
		art, err := s.article(in.ID)
		if err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		if in.Title != nil {
			return fmt.Errorf("update article: %w", entity.RejectImmutableWrite("Article", "title"))
		}

		var newAuthor *entity.Author
		if in.AuthorID != nil {
			if newAuthor, err = s.author(*in.AuthorID); err != nil {
				return fmt.Errorf("update article: %w", err)
			}
		}
		var newMagazine *entity.Magazine
		if in.MagazineID != nil {
			if newMagazine, err = s.magazine(*in.MagazineID); err != nil {
				return fmt.Errorf("update article: %w", err)
			}
		}

		if newAuthor != nil && newAuthor != art.Author() {
			if err := art.SetAuthor(newAuthor); err != nil {
				return fmt.Errorf("update article: %w", err)
			}
			metrics.RecordRelink("author")
		}
		if newMagazine != nil && newMagazine != art.Magazine() {
			if err := art.SetMagazine(newMagazine); err != nil {
				return fmt.Errorf("update article: %w", err)
			}
			metrics.RecordRelink("magazine")
		}
		return nil
	})
}

// RemoveArticle drops an article from its author's list only.
// The article stays registered, keeps its author reference and stays on its
// magazine. Returns an error wrapping entity.ErrNotFound if the article is not
// in the author's list.
func (s *Service) RemoveArticle(ctx context.Context, authorID, articleID uuid.UUID) error {
	attrs := []attribute.KeyValue{
		attribute.String("author.id", authorID.String()),
		attribute.String("article.id", articleID.String()),
	}
	return s.run(ctx, "remove_article", attrs, func() error {
		author, err := s.author(authorID)
		if err != nil {
			return fmt.Errorf("remove article: %w", err)
		}
		art, err := s.article(articleID)
		if err != nil {
			return fmt.Errorf("remove article: %w", err)
		}
		if err := author.RemoveArticle(art); err != nil {
			return fmt.Errorf("remove article: %w", err)
		}
		return nil
	})
}
