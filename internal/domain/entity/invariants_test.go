package entity

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// checkAssociations verifies that every registered article sits exactly once in
// its author's list and exactly once in its magazine's list, and nowhere else.
func checkAssociations(t *rapid.T, reg *Registry, authors []*Author) {
	for _, art := range reg.Articles() {
		for _, a := range authors {
			n := count(a.articles, art)
			if a == art.author && n != 1 {
				t.Fatalf("article %q appears %d times on its author %q", art.title, n, a.name)
			}
			if a != art.author && n != 0 {
				t.Fatalf("article %q appears on foreign author %q", art.title, a.name)
			}
		}
		for _, m := range reg.magazines {
			n := count(m.articles, art)
			if m == art.magazine && n != 1 {
				t.Fatalf("article %q appears %d times on its magazine %q", art.title, n, m.name)
			}
			if m != art.magazine && n != 0 {
				t.Fatalf("article %q appears on foreign magazine %q", art.title, m.name)
			}
		}
	}

	total := 0
	for _, a := range authors {
		total += len(a.articles)
	}
	if total != len(reg.articles) {
		t.Fatalf("authors hold %d articles, registry holds %d", total, len(reg.articles))
	}
}

func count(list []*Article, art *Article) int {
	n := 0
	for _, x := range list {
		if x == art {
			n++
		}
	}
	return n
}

func TestAssociationInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := NewRegistry()

		nAuthors := rapid.IntRange(1, 4).Draw(t, "authors")
		authors := make([]*Author, 0, nAuthors)
		for i := 0; i < nAuthors; i++ {
			a, err := NewAuthor(rapid.StringMatching(`[A-Z][a-z]{1,8}`).Draw(t, "authorName"))
			if err != nil {
				t.Fatalf("NewAuthor: %v", err)
			}
			authors = append(authors, a)
		}

		nMagazines := rapid.IntRange(1, 4).Draw(t, "magazines")
		magazines := make([]*Magazine, 0, nMagazines)
		for i := 0; i < nMagazines; i++ {
			m, err := reg.NewMagazine(
				rapid.StringMatching(`[A-Z][a-z]{1,10}`).Draw(t, "magazineName"),
				rapid.SampledFrom([]string{"Fashion", "Architecture", "Culture"}).Draw(t, "category"),
			)
			if err != nil {
				t.Fatalf("NewMagazine: %v", err)
			}
			magazines = append(magazines, m)
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			articles := reg.Articles()
			op := rapid.IntRange(0, 3).Draw(t, "op")
			switch {
			case op == 0 || len(articles) == 0:
				a := rapid.SampledFrom(authors).Draw(t, "author")
				m := rapid.SampledFrom(magazines).Draw(t, "magazine")
				title := rapid.StringMatching(`[a-z ]{0,60}`).Draw(t, "title")
				before := len(reg.articles)
				_, err := a.AddArticle(m, title)
				valid := ValidateTitle(title) == nil
				if valid != (err == nil) {
					t.Fatalf("AddArticle(%q) err = %v, title valid = %v", title, err, valid)
				}
				if err != nil && len(reg.articles) != before {
					t.Fatalf("rejected article was registered")
				}
			case op == 1:
				art := rapid.SampledFrom(articles).Draw(t, "article")
				a := rapid.SampledFrom(authors).Draw(t, "newAuthor")
				if err := art.SetAuthor(a); err != nil {
					t.Fatalf("SetAuthor: %v", err)
				}
			case op == 2:
				art := rapid.SampledFrom(articles).Draw(t, "article")
				m := rapid.SampledFrom(magazines).Draw(t, "newMagazine")
				if err := art.SetMagazine(m); err != nil {
					t.Fatalf("SetMagazine: %v", err)
				}
			default:
				art := rapid.SampledFrom(articles).Draw(t, "article")
				prevAuthor, prevMagazine := art.author, art.magazine
				if err := art.SetAuthor(nil); err == nil {
					t.Fatalf("SetAuthor(nil) succeeded")
				}
				if err := art.SetMagazine(nil); err == nil {
					t.Fatalf("SetMagazine(nil) succeeded")
				}
				if art.author != prevAuthor || art.magazine != prevMagazine {
					t.Fatalf("rejected relink changed the article")
				}
			}
			checkAssociations(t, reg, authors)
		}

		top := reg.TopPublisher()
		for _, m := range magazines {
			if len(m.articles) > len(top.articles) {
				t.Fatalf("TopPublisher %q has %d articles, %q has %d", top.name, len(top.articles), m.name, len(m.articles))
			}
		}
		if i := slices.Index(magazines, top); i < 0 {
			t.Fatalf("TopPublisher returned an unregistered magazine")
		}
	})
}
