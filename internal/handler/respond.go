package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/middleware"
	"blog-cms/internal/validator"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps err to a status code and writes it. Unclassified errors
// are logged and reported as 500 without detail.
func respondError(c *gin.Context, err error) {
	if fields, ok := validator.FieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidLimit), errors.Is(err, domain.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrInvalidViewer), errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		middleware.RequestLogger(c).Error("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// pathID parses the :id route parameter, answering 400 when it is not a
// positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// pageParams reads ?page= and ?limit=.
func (p Paging) pageParams(c *gin.Context) (content.PageParams, bool) {
	params, err := content.ParsePageParams(c.Query("page"), c.Query("limit"), p.DefaultLimit, p.MaxLimit)
	if err != nil {
		respondError(c, err)
		return content.PageParams{}, false
	}
	return params, true
}
