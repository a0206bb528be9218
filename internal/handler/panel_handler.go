package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// PanelHandler serves the author and admin panels. Route groups guard the
// scope; ownership and status rules are enforced by the service.
type PanelHandler struct {
	manage service.ManageServiceInterface
	paging Paging
}

// NewPanelHandler creates a new PanelHandler.
func NewPanelHandler(manageService service.ManageServiceInterface, paging Paging) *PanelHandler {
	return &PanelHandler{manage: manageService, paging: paging}
}

// Dashboard handles GET /admin-panel
func (h *PanelHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.manage.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// ListPosts handles GET {panel}/posts. Authors see only their own posts.
func (h *PanelHandler) ListPosts(c *gin.Context) {
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	listing, err := h.manage.ListPosts(c.Request.Context(), middleware.GetViewer(c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CreatePost handles POST {panel}/posts
func (h *PanelHandler) CreatePost(c *gin.Context) {
	var in domain.PostInput
	if !bindJSON(c, &in) {
		return
	}

	post, err := h.manage.CreatePost(c.Request.Context(), middleware.GetViewer(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET {panel}/posts/:id. Another author's post is a 404.
func (h *PanelHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.manage.GetPost(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT {panel}/posts/:id
func (h *PanelHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.PostInput
	if !bindJSON(c, &in) {
		return
	}

	post, err := h.manage.UpdatePost(c.Request.Context(), middleware.GetViewer(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE {panel}/posts/:id
func (h *PanelHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.manage.DeletePost(c.Request.Context(), middleware.GetViewer(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories handles GET /admin-panel/categories
func (h *PanelHandler) ListCategories(c *gin.Context) {
	categories, err := h.manage.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory handles POST /admin-panel/categories
func (h *PanelHandler) CreateCategory(c *gin.Context) {
	var in domain.TaxonomyInput
	if !bindJSON(c, &in) {
		return
	}

	category, err := h.manage.CreateCategory(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /admin-panel/categories/:id
func (h *PanelHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.manage.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTags handles GET /admin-panel/tags
func (h *PanelHandler) ListTags(c *gin.Context) {
	tags, err := h.manage.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// CreateTag handles POST /admin-panel/tags
func (h *PanelHandler) CreateTag(c *gin.Context) {
	var in domain.TaxonomyInput
	if !bindJSON(c, &in) {
		return
	}

	tag, err := h.manage.CreateTag(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// DeleteTag handles DELETE /admin-panel/tags/:id
func (h *PanelHandler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.manage.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAuthors handles GET /admin-panel/authors
func (h *PanelHandler) ListAuthors(c *gin.Context) {
	authors, err := h.manage.ListAuthors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// CreateAuthor handles POST /admin-panel/authors
func (h *PanelHandler) CreateAuthor(c *gin.Context) {
	var in domain.AuthorInput
	if !bindJSON(c, &in) {
		return
	}

	author, err := h.manage.CreateAuthor(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, author)
}

// DeleteAuthor handles DELETE /admin-panel/authors/:id
func (h *PanelHandler) DeleteAuthor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.manage.DeleteAuthor(c.Request.Context(), middleware.GetViewer(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListComments handles GET /admin-panel/comments
func (h *PanelHandler) ListComments(c *gin.Context) {
	comments, err := h.manage.ListComments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type moderateRequest struct {
	Status domain.CommentStatus `json:"status"`
}

// ModerateComment handles PUT /admin-panel/comments/:id
func (h *PanelHandler) ModerateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req moderateRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.manage.ModerateComment(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// DeleteComment handles DELETE /admin-panel/comments/:id
func (h *PanelHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.manage.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMessages handles GET /admin-panel/messages
func (h *PanelHandler) ListMessages(c *gin.Context) {
	params, ok := h.paging.pageParams(c)
	if !ok {
		return
	}

	page, err := h.manage.ListContactMessages(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
