package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// AuthorHandler serves public author profiles.
type AuthorHandler struct {
	content service.ContentServiceInterface
	paging  Paging
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(contentService service.ContentServiceInterface, paging Paging) *AuthorHandler {
	return &AuthorHandler{content: contentService, paging: paging}
}

// ListAuthors handles GET /api/authors
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.content.ListAuthors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// GetAuthor handles GET /api/authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	profile, err := h.content.GetAuthorProfile(c.Request.Context(), middleware.GetViewer(c), id, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
