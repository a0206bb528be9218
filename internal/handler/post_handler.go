package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// PostHandler serves the public post endpoints.
type PostHandler struct {
	content service.ContentServiceInterface
	paging  Paging
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(contentService service.ContentServiceInterface, paging Paging) *PostHandler {
	return &PostHandler{content: contentService, paging: paging}
}

// ListPosts handles GET /api/posts. At most one of ?category=, ?tag= or
// ?author= narrows the listing; they are checked in that order.
func (h *PostHandler) ListPosts(c *gin.Context) {
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	kind, value := listingFilter(c)
	listing, err := h.content.ListPosts(c.Request.Context(), content.ListRequest{
		Viewer:      middleware.GetViewer(c),
		FilterKind:  kind,
		FilterValue: value,
		Page:        params.Page,
		Limit:       params.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func listingFilter(c *gin.Context) (content.FilterKind, string) {
	if v := strings.TrimSpace(c.Query("category")); v != "" {
		return content.FilterCategorySlug, v
	}
	if v := strings.TrimSpace(c.Query("tag")); v != "" {
		return content.FilterTagSlug, v
	}
	if v := strings.TrimSpace(c.Query("author")); v != "" {
		return content.FilterAuthorID, v
	}
	return content.FilterNone, ""
}

// GetPost handles GET /api/posts/:slug
func (h *PostHandler) GetPost(c *gin.Context) {
	detail, err := h.content.GetPost(c.Request.Context(), middleware.GetViewer(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddComment handles POST /api/posts/:slug/comments. New comments wait for
// moderation.
func (h *PostHandler) AddComment(c *gin.Context) {
	var in domain.CommentInput
	if !bindJSON(c, &in) {
		return
	}

	comment, err := h.content.AddComment(c.Request.Context(), middleware.GetViewer(c), c.Param("slug"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
