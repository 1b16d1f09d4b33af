package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NewMagazine(t *testing.T) {
	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{"valid", "Vogue", "Fashion", ""},
		{"short name", "V", "Fashion", "name"},
		{"long name", "New Yorker Plus X", "Culture", "name"},
		{"empty category", "Vogue", "", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()

			m, err := reg.NewMagazine(tt.magName, tt.category)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.magName, m.Name())
				assert.Equal(t, tt.category, m.Category())
				assert.Same(t, reg, m.Registry())
				assert.Equal(t, []*Magazine{m}, reg.Magazines())
				return
			}

			var valErr *ValidationError
			if assert.ErrorAs(t, err, &valErr) {
				assert.Equal(t, tt.wantField, valErr.Field)
			}
			assert.Nil(t, m)
			assert.Empty(t, reg.Magazines(), "rejected magazines are not registered")
		})
	}
}

func TestRegistry_TopPublisher(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.TopPublisher(), "empty registry has no top publisher")

	author, err := NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	vogue, err := reg.NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)
	ad, err := reg.NewMagazine("AD", "Architecture")
	require.NoError(t, err)

	assert.Same(t, vogue, reg.TopPublisher(), "ties among empty magazines go to the first")

	_, err = author.AddArticle(ad, "Modern minimalist homes")
	require.NoError(t, err)
	assert.Same(t, ad, reg.TopPublisher())

	_, err = author.AddArticle(vogue, "How to wear a tutu")
	require.NoError(t, err)
	assert.Same(t, vogue, reg.TopPublisher(), "ties go to the earliest constructed")

	_, err = author.AddArticle(ad, "Brutalism revisited")
	require.NoError(t, err)
	assert.Same(t, ad, reg.TopPublisher())
}

func TestRegistry_TopPublisher_AfterRelink(t *testing.T) {
	reg := NewRegistry()
	author, err := NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	vogue, err := reg.NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)
	ad, err := reg.NewMagazine("AD", "Architecture")
	require.NoError(t, err)

	art, err := author.AddArticle(vogue, "How to wear a tutu")
	require.NoError(t, err)
	assert.Same(t, vogue, reg.TopPublisher())

	require.NoError(t, art.SetMagazine(ad))
	assert.Same(t, ad, reg.TopPublisher())
}

func TestRegistry_Isolation(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	_, err := first.NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	assert.Len(t, first.Magazines(), 1)
	assert.Empty(t, second.Magazines())
	assert.Nil(t, second.TopPublisher())
}

func TestRegistry_Reset(t *testing.T) {
	reg, author, magazine := fixture(t)
	_, err := author.AddArticle(magazine, "How to wear a tutu")
	require.NoError(t, err)

	reg.Reset()

	assert.Empty(t, reg.Magazines())
	assert.Empty(t, reg.Articles())
	assert.Nil(t, reg.TopPublisher())
}

func TestScenario_SingleArticle(t *testing.T) {
	reg := NewRegistry()
	author, err := NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	magazine, err := reg.NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	_, err = NewArticle(author, magazine, "How to wear a tutu")
	require.NoError(t, err)

	assert.Equal(t, []string{"How to wear a tutu"}, magazine.ArticleTitles())
	assert.Equal(t, []*Magazine{magazine}, author.Magazines())
	assert.Equal(t, []*Author{author}, magazine.Contributors())
	assert.Equal(t, []string{"Fashion"}, author.TopicAreas())
	assert.Same(t, magazine, reg.TopPublisher())
}
