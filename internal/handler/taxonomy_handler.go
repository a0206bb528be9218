package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// TaxonomyHandler serves categories and tags.
type TaxonomyHandler struct {
	content service.ContentServiceInterface
	paging  Paging
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(contentService service.ContentServiceInterface, paging Paging) *TaxonomyHandler {
	return &TaxonomyHandler{content: contentService, paging: paging}
}

// ListCategories handles GET /api/categories
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.content.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory handles GET /api/category/:slug
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	listing, err := h.content.ListCategoryPosts(c.Request.Context(), middleware.GetViewer(c), c.Param("slug"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// ListTags handles GET /api/tags
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.content.ListTopTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// GetTag handles GET /api/tags/:slug
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	listing, err := h.content.ListTagPosts(c.Request.Context(), middleware.GetViewer(c), c.Param("slug"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}
