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

func TestPanelHandler_Posts(t *testing.T) {
	author := domain.Authenticated(5, domain.RoleAuthor)

	t.Run("lists the viewer's posts", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().ListPosts(mock.Anything, author, content.PageParams{Page: 1, Limit: 10}).Return(content.Listing{
			Items: []domain.Post{
				{ID: 1, AuthorID: 5, Status: domain.PostStatusDraft},
				{ID: 2, AuthorID: 5, Status: domain.PostStatusPublished},
			},
			PageInfo: content.PageInfo{CurrentPage: 1, Limit: 10, Total: 2, TotalPages: 1},
		}, nil)

		router := newRouter(author)
		router.GET("/author-panel/posts", h.ListPosts)

		w := doJSON(router, http.MethodGet, "/author-panel/posts", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body content.Listing
		decode(t, w, &body)
		assert.Len(t, body.Items, 2)
	})

	t.Run("creates a post", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		in := domain.PostInput{Title: "Hello", Content: "Body", CategoryIDs: []int64{1}}
		svc.EXPECT().CreatePost(mock.Anything, author, in).
			Return(&domain.Post{ID: 10, Title: "Hello", Slug: "hello", Status: domain.PostStatusDraft, AuthorID: 5}, nil)

		router := newRouter(author)
		router.POST("/author-panel/posts", h.CreatePost)

		w := doJSON(router, http.MethodPost, "/author-panel/posts", in)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"hello"`)
	})

	t.Run("gets own post", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().GetPost(mock.Anything, author, int64(10)).
			Return(&domain.Post{ID: 10, Slug: "hello", Status: domain.PostStatusDraft, AuthorID: 5}, nil)

		router := newRouter(author)
		router.GET("/author-panel/posts/:id", h.GetPost)

		w := doJSON(router, http.MethodGet, "/author-panel/posts/10", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.Post
		decode(t, w, &body)
		assert.Equal(t, int64(10), body.ID)
		assert.Equal(t, domain.PostStatusDraft, body.Status)
	})

	t.Run("getting someone else's post is 404", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().GetPost(mock.Anything, author, int64(99)).Return(nil, domain.ErrNotFound)

		router := newRouter(author)
		router.GET("/author-panel/posts/:id", h.GetPost)

		w := doJSON(router, http.MethodGet, "/author-panel/posts/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric post id is 400", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		router := newRouter(author)
		router.GET("/author-panel/posts/:id", h.GetPost)

		w := doJSON(router, http.MethodGet, "/author-panel/posts/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("author publishing directly is forbidden", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().UpdatePost(mock.Anything, author, int64(10), mock.Anything).Return(nil, domain.ErrForbidden)

		router := newRouter(author)
		router.PUT("/author-panel/posts/:id", h.UpdatePost)

		w := doJSON(router, http.MethodPut, "/author-panel/posts/10", domain.PostInput{Title: "Hello", Status: domain.PostStatusPublished})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("someone else's post is 404", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().DeletePost(mock.Anything, author, int64(99)).Return(domain.ErrNotFound)

		router := newRouter(author)
		router.DELETE("/author-panel/posts/:id", h.DeletePost)

		w := doJSON(router, http.MethodDelete, "/author-panel/posts/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deletes own post", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().DeletePost(mock.Anything, author, int64(1)).Return(nil)

		router := newRouter(author)
		router.DELETE("/author-panel/posts/:id", h.DeletePost)

		w := doJSON(router, http.MethodDelete, "/author-panel/posts/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPanelHandler_Admin(t *testing.T) {
	admin := domain.Authenticated(1, domain.RoleAdmin)

	t.Run("dashboard", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().Dashboard(mock.Anything).Return(&service.Dashboard{
			TotalPosts:      3,
			PostsByStatus:   map[domain.PostStatus]int{domain.PostStatusPublished: 2, domain.PostStatusDraft: 1},
			TotalAuthors:    2,
			PendingComments: 4,
			LatestPosts:     []domain.Post{{ID: 3, Slug: "newest"}},
			RecentMessages:  []domain.ContactMessage{{ID: 8, Subject: "Hello"}},
		}, nil)

		router := newRouter(admin)
		router.GET("/admin-panel", h.Dashboard)

		w := doJSON(router, http.MethodGet, "/admin-panel", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body service.Dashboard
		decode(t, w, &body)
		assert.Equal(t, 2, body.PostsByStatus[domain.PostStatusPublished])
		assert.Equal(t, 4, body.PendingComments)
		require.Len(t, body.LatestPosts, 1)
		assert.Equal(t, "newest", body.LatestPosts[0].Slug)
		require.Len(t, body.RecentMessages, 1)
		assert.Equal(t, "Hello", body.RecentMessages[0].Subject)
	})

	t.Run("duplicate category is 409", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		in := domain.TaxonomyInput{Name: "Go"}
		svc.EXPECT().CreateCategory(mock.Anything, in).Return(nil, domain.ErrConflict)

		router := newRouter(admin)
		router.POST("/admin-panel/categories", h.CreateCategory)

		w := doJSON(router, http.MethodPost, "/admin-panel/categories", in)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("creates a tag", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		in := domain.TaxonomyInput{Name: "Postgres"}
		svc.EXPECT().CreateTag(mock.Anything, in).Return(&domain.Tag{ID: 3, Name: "Postgres", Slug: "postgres"}, nil)

		router := newRouter(admin)
		router.POST("/admin-panel/tags", h.CreateTag)

		w := doJSON(router, http.MethodPost, "/admin-panel/tags", in)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("deleting an unknown tag is 404", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().DeleteTag(mock.Anything, int64(42)).Return(domain.ErrNotFound)

		router := newRouter(admin)
		router.DELETE("/admin-panel/tags/:id", h.DeleteTag)

		w := doJSON(router, http.MethodDelete, "/admin-panel/tags/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleting yourself is forbidden", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().DeleteAuthor(mock.Anything, admin, int64(1)).Return(domain.ErrForbidden)

		router := newRouter(admin)
		router.DELETE("/admin-panel/authors/:id", h.DeleteAuthor)

		w := doJSON(router, http.MethodDelete, "/admin-panel/authors/1", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("creates an author without echoing the password", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		in := domain.AuthorInput{Name: "Bob", Email: "bob@example.com", Password: "s3cret-pw", Role: domain.RoleAuthor}
		svc.EXPECT().CreateAuthor(mock.Anything, in).
			Return(&domain.Author{ID: 8, Name: "Bob", Email: "bob@example.com", PasswordHash: "$2a$10$hash", Role: domain.RoleAuthor}, nil)

		router := newRouter(admin)
		router.POST("/admin-panel/authors", h.CreateAuthor)

		w := doJSON(router, http.MethodPost, "/admin-panel/authors", in)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "s3cret-pw")
		assert.NotContains(t, w.Body.String(), "$2a$10$hash")
	})

	t.Run("moderates a comment", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().ModerateComment(mock.Anything, int64(6), domain.CommentStatusApproved).Return(nil)

		router := newRouter(admin)
		router.PUT("/admin-panel/comments/:id", h.ModerateComment)

		w := doJSON(router, http.MethodPut, "/admin-panel/comments/6", map[string]string{"status": "APPROVED"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":6,"status":"APPROVED"}`, w.Body.String())
	})

	t.Run("rejects an unknown moderation status", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().ModerateComment(mock.Anything, int64(6), domain.CommentStatus("PENDING")).
			Return(fieldError("status", "must be a valid value"))

		router := newRouter(admin)
		router.PUT("/admin-panel/comments/:id", h.ModerateComment)

		w := doJSON(router, http.MethodPut, "/admin-panel/comments/6", map[string]string{"status": "PENDING"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists contact messages", func(t *testing.T) {
		svc := mocks.NewMockManageServiceInterface(t)
		h := NewPanelHandler(svc, testPaging)

		svc.EXPECT().ListContactMessages(mock.Anything, content.PageParams{Page: 2, Limit: 20}).Return(&service.MessagePage{
			Items:    []domain.ContactMessage{{ID: 1, Name: "Ann"}},
			PageInfo: content.PageInfo{CurrentPage: 2, Limit: 20, Total: 21, TotalPages: 2, HasPrev: true},
		}, nil)

		router := newRouter(admin)
		router.GET("/admin-panel/messages", h.ListMessages)

		w := doJSON(router, http.MethodGet, "/admin-panel/messages?page=2&limit=20", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":21`)
	})
}
