package catalog

import (
	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// AuthorView is a snapshot of an author taken under the service lock.
type AuthorView struct {
	ID           uuid.UUID
	Name         string
	ArticleCount int
}

// MagazineView is a snapshot of a magazine taken under the service lock.
type MagazineView struct {
	ID           uuid.UUID
	Name         string
	Category     string
	ArticleCount int
}

// ArticleView is a snapshot of an article taken under the service lock.
type ArticleView struct {
	ID         uuid.UUID
	Title      string
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
}

// Stats reports how many entities the catalog holds.
// Articles counts every registered article, including ones an author has removed
// from its own list.
type Stats struct {
	Authors   int
	Magazines int
	Articles  int
}

func authorView(a *entity.Author) AuthorView {
	return AuthorView{ID: a.ID(), Name: a.Name(), ArticleCount: len(a.Articles())}
}

func magazineView(m *entity.Magazine) MagazineView {
	return MagazineView{
		ID:           m.ID(),
		Name:         m.Name(),
		Category:     m.Category(),
		ArticleCount: len(m.Articles()),
	}
}

func articleView(a *entity.Article) ArticleView {
	return ArticleView{
		ID:         a.ID(),
		Title:      a.Title(),
		AuthorID:   a.Author().ID(),
		MagazineID: a.Magazine().ID(),
	}
}

func authorViews(authors []*entity.Author) []AuthorView {
	if authors == nil {
		return nil
	}
	out := make([]AuthorView, 0, len(authors))
	for _, a := range authors {
		out = append(out, authorView(a))
	}
	return out
}

func magazineViews(magazines []*entity.Magazine) []MagazineView {
	if magazines == nil {
		return nil
	}
	out := make([]MagazineView, 0, len(magazines))
	for _, m := range magazines {
		out = append(out, magazineView(m))
	}
	return out
}

func articleViews(articles []*entity.Article) []ArticleView {
	if articles == nil {
		return nil
	}
	out := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleView(a))
	}
	return out
}
