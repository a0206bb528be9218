package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/service"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	content service.ContentServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contentService service.ContentServiceInterface) *ContactHandler {
	return &ContactHandler{content: contentService}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req) {
		return
	}

	msg := &domain.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		MessageBody: req.Message,
	}
	if err := h.content.SubmitContact(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         msg.ID,
		"created_at": msg.CreatedAt.Format(TimeFormat),
	})
}
