package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GetAuthor returns the author with the given ID.
func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (AuthorView, error) {
	var out AuthorView
	err := s.run(ctx, "get_author", idAttr("author.id", id), func() error {
		a, err := s.author(id)
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}
		out = authorView(a)
		return nil
	})
	return out, err
}

// GetMagazine returns the magazine with the given ID.
func (s *Service) GetMagazine(ctx context.Context, id uuid.UUID) (MagazineView, error) {
	var out MagazineView
	err := s.run(ctx, "get_magazine", idAttr("magazine.id", id), func() error {
		m, err := s.magazine(id)
		if err != nil {
			return fmt.Errorf("get magazine: %w", err)
		}
		out = magazineView(m)
		return nil
	})
	return out, err
}

// GetArticle returns the article with the given ID.
func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (ArticleView, error) {
	var out ArticleView
	err := s.run(ctx, "get_article", idAttr("article.id", id), func() error {
		a, err := s.article(id)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		out = articleView(a)
		return nil
	})
	return out, err
}

// ListAuthors returns every author in creation order.
func (s *Service) ListAuthors(ctx context.Context) ([]AuthorView, error) {
	var out []AuthorView
	err := s.run(ctx, "list_authors", nil, func() error {
		out = authorViews(s.authorOrder)
		return nil
	})
	return out, err
}

// ListMagazines returns every registered magazine in creation order.
func (s *Service) ListMagazines(ctx context.Context) ([]MagazineView, error) {
	var out []MagazineView
	err := s.run(ctx, "list_magazines", nil, func() error {
		out = magazineViews(s.registry.Magazines())
		return nil
	})
	return out, err
}

// ListArticles returns every registered article in creation order.
func (s *Service) ListArticles(ctx context.Context) ([]ArticleView, error) {
	var out []ArticleView
	err := s.run(ctx, "list_articles", nil, func() error {
		out = articleViews(s.registry.Articles())
		return nil
	})
	return out, err
}

// AuthorArticles returns the articles currently in the author's list.
func (s *Service) AuthorArticles(ctx context.Context, authorID uuid.UUID) ([]ArticleView, error) {
	var out []ArticleView
	err := s.run(ctx, "author_articles", idAttr("author.id", authorID), func() error {
		a, err := s.author(authorID)
		if err != nil {
			return fmt.Errorf("author articles: %w", err)
		}
		out = articleViews(a.Articles())
		return nil
	})
	return out, err
}

// AuthorMagazines returns the distinct magazines the author has written for.
func (s *Service) AuthorMagazines(ctx context.Context, authorID uuid.UUID) ([]MagazineView, error) {
	var out []MagazineView
	err := s.run(ctx, "author_magazines", idAttr("author.id", authorID), func() error {
		a, err := s.author(authorID)
		if err != nil {
			return fmt.Errorf("author magazines: %w", err)
		}
		out = magazineViews(a.Magazines())
		return nil
	})
	return out, err
}

// TopicAreas returns the distinct categories the author has written in,
// or nil if the author has no articles.
func (s *Service) TopicAreas(ctx context.Context, authorID uuid.UUID) ([]string, error) {
	var out []string
	err := s.run(ctx, "topic_areas", idAttr("author.id", authorID), func() error {
		a, err := s.author(authorID)
		if err != nil {
			return fmt.Errorf("topic areas: %w", err)
		}
		out = a.TopicAreas()
		return nil
	})
	return out, err
}

// MagazineArticles returns the articles published by the magazine.
func (s *Service) MagazineArticles(ctx context.Context, magazineID uuid.UUID) ([]ArticleView, error) {
	var out []ArticleView
	err := s.run(ctx, "magazine_articles", idAttr("magazine.id", magazineID), func() error {
		m, err := s.magazine(magazineID)
		if err != nil {
			return fmt.Errorf("magazine articles: %w", err)
		}
		out = articleViews(m.Articles())
		return nil
	})
	return out, err
}

// Contributors returns the distinct authors published by the magazine.
func (s *Service) Contributors(ctx context.Context, magazineID uuid.UUID) ([]AuthorView, error) {
	var out []AuthorView
	err := s.run(ctx, "contributors", idAttr("magazine.id", magazineID), func() error {
		m, err := s.magazine(magazineID)
		if err != nil {
			return fmt.Errorf("contributors: %w", err)
		}
		out = authorViews(m.Contributors())
		return nil
	})
	return out, err
}

// ArticleTitles returns the titles published by the magazine, or nil if it has none.
func (s *Service) ArticleTitles(ctx context.Context, magazineID uuid.UUID) ([]string, error) {
	var out []string
	err := s.run(ctx, "article_titles", idAttr("magazine.id", magazineID), func() error {
		m, err := s.magazine(magazineID)
		if err != nil {
			return fmt.Errorf("article titles: %w", err)
		}
		out = m.ArticleTitles()
		return nil
	})
	return out, err
}

// ContributingAuthors returns the authors with more than two articles in the
// magazine, or nil if none qualify.
func (s *Service) ContributingAuthors(ctx context.Context, magazineID uuid.UUID) ([]AuthorView, error) {
	var out []AuthorView
	err := s.run(ctx, "contributing_authors", idAttr("magazine.id", magazineID), func() error {
		m, err := s.magazine(magazineID)
		if err != nil {
			return fmt.Errorf("contributing authors: %w", err)
		}
		out = authorViews(m.ContributingAuthors())
		return nil
	})
	return out, err
}

// TopPublisher returns the magazine with the most articles, or nil if the
// catalog has no magazines. Ties go to the magazine created first.
func (s *Service) TopPublisher(ctx context.Context) (*MagazineView, error) {
	var out *MagazineView
	err := s.run(ctx, "top_publisher", nil, func() error {
		if m := s.registry.TopPublisher(); m != nil {
			v := magazineView(m)
			out = &v
		}
		return nil
	})
	return out, err
}

func idAttr(key string, id uuid.UUID) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.String(key, id.String())}
}
