package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/mocks"
	"blog-cms/internal/service"
)

func TestTaxonomyHandler(t *testing.T) {
	t.Run("lists categories", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewTaxonomyHandler(svc, testPaging)

		svc.EXPECT().ListCategories(mock.Anything).Return([]domain.Category{{ID: 1, Name: "Go", Slug: "go", PostCount: 3}}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/categories", h.ListCategories)

		w := doJSON(router, http.MethodGet, "/api/categories", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Categories []domain.Category `json:"categories"`
		}
		decode(t, w, &body)
		require.Len(t, body.Categories, 1)
		assert.Equal(t, 3, body.Categories[0].PostCount)
	})

	t.Run("unknown category is 404", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewTaxonomyHandler(svc, testPaging)

		svc.EXPECT().ListCategoryPosts(mock.Anything, domain.Anonymous(), "nope", content.PageParams{Page: 1, Limit: 10}).
			Return(nil, domain.ErrNotFound)

		router := newRouter(domain.Anonymous())
		router.GET("/api/category/:slug", h.GetCategory)

		w := doJSON(router, http.MethodGet, "/api/category/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("category page embeds the listing", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewTaxonomyHandler(svc, testPaging)

		svc.EXPECT().ListCategoryPosts(mock.Anything, domain.Anonymous(), "go", content.PageParams{Page: 3, Limit: 10}).
			Return(&service.CategoryListing{
				Category: &domain.Category{ID: 1, Slug: "go"},
				Listing: content.Listing{
					Items:    []domain.Post{},
					PageInfo: content.PageInfo{CurrentPage: 3, Limit: 10, Total: 4, TotalPages: 1, HasPrev: true},
				},
			}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/category/:slug", h.GetCategory)

		w := doJSON(router, http.MethodGet, "/api/category/go?page=3", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"category":{`)
		assert.Contains(t, w.Body.String(), `"pagination":{`)
		assert.Contains(t, w.Body.String(), `"current_page":3`)
	})

	t.Run("lists top tags", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewTaxonomyHandler(svc, testPaging)

		svc.EXPECT().ListTopTags(mock.Anything).Return([]domain.Tag{{ID: 2, Slug: "sql", PostCount: 8}}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/tags", h.ListTags)

		w := doJSON(router, http.MethodGet, "/api/tags", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"sql"`)
	})

	t.Run("tag page with bad limit", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewTaxonomyHandler(svc, testPaging)

		router := newRouter(domain.Anonymous())
		router.GET("/api/tags/:slug", h.GetTag)

		w := doJSON(router, http.MethodGet, "/api/tags/sql?limit=-4", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorHandler(t *testing.T) {
	t.Run("lists authors", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewAuthorHandler(svc, testPaging)

		svc.EXPECT().ListAuthors(mock.Anything).Return([]domain.Author{{ID: 4, Name: "Ada", PasswordHash: "secret-hash"}}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/authors", h.ListAuthors)

		w := doJSON(router, http.MethodGet, "/api/authors", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("profile", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewAuthorHandler(svc, testPaging)
		viewer := domain.Authenticated(4, domain.RoleAuthor)

		svc.EXPECT().GetAuthorProfile(mock.Anything, viewer, int64(4), content.PageParams{Page: 1, Limit: 10}).
			Return(&service.AuthorListing{Author: &domain.Author{ID: 4, Name: "Ada"}}, nil)

		router := newRouter(viewer)
		router.GET("/api/authors/:id", h.GetAuthor)

		w := doJSON(router, http.MethodGet, "/api/authors/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewAuthorHandler(svc, testPaging)

		router := newRouter(domain.Anonymous())
		router.GET("/api/authors/:id", h.GetAuthor)

		w := doJSON(router, http.MethodGet, "/api/authors/ada", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandler_Submit(t *testing.T) {
	t.Run("stores the message", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewContactHandler(svc)

		created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		svc.EXPECT().SubmitContact(mock.Anything, mock.MatchedBy(func(m *domain.ContactMessage) bool {
			return m.Email == "ann@example.com" && m.MessageBody == "Hello there"
		})).RunAndReturn(func(_ context.Context, m *domain.ContactMessage) error {
			m.ID = 77
			m.CreatedAt = created
			return nil
		})

		router := newRouter(domain.Anonymous())
		router.POST("/api/contact", h.Submit)

		w := doJSON(router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Ann",
			"email":   "ann@example.com",
			"subject": "Hi",
			"message": "Hello there",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		decode(t, w, &body)
		assert.Equal(t, float64(77), body["id"])
		assert.Equal(t, "2026-03-01T12:00:00Z", body["created_at"])
	})

	t.Run("validation errors carry fields", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewContactHandler(svc)

		svc.EXPECT().SubmitContact(mock.Anything, mock.Anything).Return(fieldError("email", "must be a valid email address"))

		router := newRouter(domain.Anonymous())
		router.POST("/api/contact", h.Submit)

		w := doJSON(router, http.MethodPost, "/api/contact", map[string]string{"email": "nope"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body errorResponse
		decode(t, w, &body)
		assert.Contains(t, body.Fields, "email")
	})
}
