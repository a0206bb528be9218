package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testPaging = Paging{DefaultLimit: 10, MaxLimit: 100}

// newRouter returns an engine whose requests are made by viewer.
func newRouter(viewer domain.Viewer) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		middleware.SetViewer(c, viewer)
		c.Next()
	})
	return router
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func fieldError(field, msg string) error {
	return validation.Errors{field: errors.New(msg)}
}
