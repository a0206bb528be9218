package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/mocks"
	"blog-cms/internal/service"
)

func TestPostHandler_ListPosts(t *testing.T) {
	t.Run("passes viewer, filter and page to the service", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)
		viewer := domain.Authenticated(3, domain.RoleAuthor)

		svc.EXPECT().ListPosts(mock.Anything, content.ListRequest{
			Viewer:      viewer,
			FilterKind:  content.FilterCategorySlug,
			FilterValue: "go",
			Page:        2,
			Limit:       5,
		}).Return(content.Listing{
			Items:    []domain.Post{{ID: 11, Title: "Channels", Status: domain.PostStatusPublished}},
			PageInfo: content.PageInfo{CurrentPage: 2, Limit: 5, Total: 6, TotalPages: 2, HasPrev: true},
		}, nil)

		router := newRouter(viewer)
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts?category=go&page=2&limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body content.Listing
		decode(t, w, &body)
		require.Len(t, body.Items, 1)
		assert.Equal(t, int64(11), body.Items[0].ID)
		assert.Equal(t, 2, body.PageInfo.TotalPages)
		assert.True(t, body.PageInfo.HasPrev)
		assert.False(t, body.PageInfo.HasNext)
	})

	t.Run("defaults page and limit for anonymous viewers", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		svc.EXPECT().ListPosts(mock.Anything, content.ListRequest{
			Viewer:     domain.Anonymous(),
			FilterKind: content.FilterNone,
			Page:       1,
			Limit:      10,
		}).Return(content.Listing{Items: []domain.Post{}, PageInfo: content.PageInfo{CurrentPage: 1, Limit: 10, TotalPages: 1}}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("rejects a non-positive limit before calling the service", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts?limit=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clamps an oversized limit", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		svc.EXPECT().ListPosts(mock.Anything, mock.MatchedBy(func(req content.ListRequest) bool {
			return req.Limit == 100
		})).Return(content.Listing{}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts?limit=5000", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric author filter is a bad request", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		svc.EXPECT().ListPosts(mock.Anything, mock.MatchedBy(func(req content.ListRequest) bool {
			return req.FilterKind == content.FilterAuthorID && req.FilterValue == "bob"
		})).Return(content.Listing{}, domain.ErrInvalidFilter)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts?author=bob", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed viewer is forbidden", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)
		viewer := domain.Authenticated(3, "EDITOR")

		svc.EXPECT().ListPosts(mock.Anything, mock.Anything).Return(content.Listing{}, domain.ErrInvalidViewer)

		router := newRouter(viewer)
		router.GET("/api/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/api/posts", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListingFilter_Precedence(t *testing.T) {
	svc := mocks.NewMockContentServiceInterface(t)
	h := NewPostHandler(svc, testPaging)

	svc.EXPECT().ListPosts(mock.Anything, mock.MatchedBy(func(req content.ListRequest) bool {
		return req.FilterKind == content.FilterTagSlug && req.FilterValue == "db"
	})).Return(content.Listing{}, nil)

	router := newRouter(domain.Anonymous())
	router.GET("/api/posts", h.ListPosts)

	w := doJSON(router, http.MethodGet, "/api/posts?category=&tag=db&author=7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostHandler_GetPost(t *testing.T) {
	t.Run("returns the post with comments", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		svc.EXPECT().GetPost(mock.Anything, domain.Anonymous(), "hello-world").Return(&service.PostDetail{
			Post:     &domain.Post{ID: 1, Slug: "hello-world", Status: domain.PostStatusPublished},
			Comments: []domain.Comment{{ID: 2, AuthorName: "Ann", Status: domain.CommentStatusApproved}},
		}, nil)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts/:slug", h.GetPost)

		w := doJSON(router, http.MethodGet, "/api/posts/hello-world", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body service.PostDetail
		decode(t, w, &body)
		assert.Equal(t, "hello-world", body.Post.Slug)
		assert.Len(t, body.Comments, 1)
	})

	t.Run("hidden or missing post is 404", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		svc.EXPECT().GetPost(mock.Anything, mock.Anything, "draft").Return(nil, domain.ErrNotFound)

		router := newRouter(domain.Anonymous())
		router.GET("/api/posts/:slug", h.GetPost)

		w := doJSON(router, http.MethodGet, "/api/posts/draft", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostHandler_AddComment(t *testing.T) {
	t.Run("creates a pending comment", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		in := domain.CommentInput{AuthorName: "Ann", Content: "Nice post"}
		svc.EXPECT().AddComment(mock.Anything, domain.Anonymous(), "hello-world", in).
			Return(&domain.Comment{ID: 9, AuthorName: "Ann", Content: "Nice post", Status: domain.CommentStatusPending}, nil)

		router := newRouter(domain.Anonymous())
		router.POST("/api/posts/:slug/comments", h.AddComment)

		w := doJSON(router, http.MethodPost, "/api/posts/hello-world/comments", in)

		require.Equal(t, http.StatusCreated, w.Code)
		var body domain.Comment
		decode(t, w, &body)
		assert.Equal(t, domain.CommentStatusPending, body.Status)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		h := NewPostHandler(svc, testPaging)

		router := newRouter(domain.Anonymous())
		router.POST("/api/posts/:slug/comments", h.AddComment)

		w := doJSON(router, http.MethodPost, "/api/posts/hello-world/comments", `{"author_name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
