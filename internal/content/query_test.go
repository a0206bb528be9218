package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
)

func TestBuildQuery(t *testing.T) {
	anon := domain.Anonymous()

	t.Run("no filter", func(t *testing.T) {
		q, err := BuildQuery(FilterNone, "ignored", anon)
		require.NoError(t, err)
		assert.Equal(t, Filter{Kind: FilterNone}, q.Filter)
		assert.Equal(t, OrderNewestFirst, q.Order)
		assert.Equal(t, domain.PostStatusPublished, q.Visibility.Status)
	})

	t.Run("category slug", func(t *testing.T) {
		q, err := BuildQuery(FilterCategorySlug, " go ", anon)
		require.NoError(t, err)
		assert.Equal(t, Filter{Kind: FilterCategorySlug, Slug: "go"}, q.Filter)
	})

	t.Run("tag slug", func(t *testing.T) {
		q, err := BuildQuery(FilterTagSlug, "testing", anon)
		require.NoError(t, err)
		assert.Equal(t, Filter{Kind: FilterTagSlug, Slug: "testing"}, q.Filter)
	})

	t.Run("author id", func(t *testing.T) {
		q, err := BuildQuery(FilterAuthorID, "42", anon)
		require.NoError(t, err)
		assert.Equal(t, Filter{Kind: FilterAuthorID, AuthorID: 42}, q.Filter)
	})

	t.Run("nonexistent slug still builds", func(t *testing.T) {
		q, err := BuildQuery(FilterCategorySlug, "nonexistent-slug", anon)
		require.NoError(t, err)
		assert.Equal(t, "nonexistent-slug", q.Filter.Slug)
	})

	t.Run("non-numeric author id", func(t *testing.T) {
		_, err := BuildQuery(FilterAuthorID, "abc", anon)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := BuildQuery("series", "x", anon)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("invalid viewer", func(t *testing.T) {
		_, err := BuildQuery(FilterNone, "", domain.Authenticated(3, "GUEST"))
		assert.ErrorIs(t, err, domain.ErrInvalidViewer)
	})
}

func TestQueryDescriptor_Matches(t *testing.T) {
	post := domain.Post{
		AuthorID:   3,
		Status:     domain.PostStatusPublished,
		Categories: []domain.Category{{Slug: "go"}},
		Tags:       []domain.Tag{{Slug: "concurrency"}},
	}

	tests := []struct {
		kind  FilterKind
		value string
		want  bool
	}{
		{FilterNone, "", true},
		{FilterCategorySlug, "go", true},
		{FilterCategorySlug, "rust", false},
		{FilterTagSlug, "concurrency", true},
		{FilterTagSlug, "generics", false},
		{FilterAuthorID, "3", true},
		{FilterAuthorID, "4", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"="+tt.value, func(t *testing.T) {
			q, err := BuildQuery(tt.kind, tt.value, domain.Anonymous())
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Matches(post))
		})
	}

	t.Run("visibility applies before filter", func(t *testing.T) {
		draft := post
		draft.Status = domain.PostStatusDraft
		q, err := BuildQuery(FilterCategorySlug, "go", domain.Anonymous())
		require.NoError(t, err)
		assert.False(t, q.Matches(draft))
	})
}
