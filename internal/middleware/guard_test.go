package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"blog-cms/internal/content"
	"blog-cms/internal/domain"
	"blog-cms/internal/metrics"
	"blog-cms/internal/middleware"
)

func newGuardedRouter(viewer domain.Viewer) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		middleware.SetViewer(c, viewer)
		c.Next()
	})

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	admin := router.Group("/admin-panel", middleware.RequireScope(content.ScopeAdmin))
	admin.GET("", ok)
	admin.GET("/posts", ok)

	author := router.Group("/author-panel", middleware.RequireScope(content.ScopeAuthor))
	author.GET("", ok)
	author.GET("/posts", ok)

	router.GET("/api/posts", middleware.RequireScope(content.ScopePublic), ok)
	return router
}

func TestRequireScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	anonymous := domain.Anonymous()
	author := domain.Authenticated(5, domain.RoleAuthor)
	admin := domain.Authenticated(1, domain.RoleAdmin)
	broken := domain.Authenticated(5, "EDITOR")

	tests := []struct {
		name         string
		viewer       domain.Viewer
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"public allows anonymous", anonymous, "/api/posts", http.StatusOK, ""},
		{"public allows malformed viewer", broken, "/api/posts", http.StatusOK, ""},
		{"anonymous to admin panel", anonymous, "/admin-panel/posts", http.StatusFound, "/login?callbackUrl=%2Fadmin-panel%2Fposts"},
		{"anonymous to author panel", anonymous, "/author-panel", http.StatusFound, "/login?callbackUrl=%2Fauthor-panel"},
		{"author to author panel", author, "/author-panel/posts", http.StatusOK, ""},
		{"author to admin panel", author, "/admin-panel", http.StatusFound, "/author-panel"},
		{"admin to admin panel", admin, "/admin-panel/posts", http.StatusOK, ""},
		{"admin to author panel", admin, "/author-panel", http.StatusOK, ""},
		{"malformed viewer to author panel", broken, "/author-panel", http.StatusForbidden, ""},
		{"malformed viewer to admin panel", broken, "/admin-panel", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGuardedRouter(tt.viewer)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}

func TestRequireScope_RecordsDecisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	denied := testutil.ToFloat64(metrics.AccessDecisions.WithLabelValues("admin", "deny"))
	allowed := testutil.ToFloat64(metrics.AccessDecisions.WithLabelValues("author", "allow"))

	router := newGuardedRouter(domain.Authenticated(5, domain.RoleAuthor))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin-panel", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/author-panel", nil))

	assert.Equal(t, denied+1, testutil.ToFloat64(metrics.AccessDecisions.WithLabelValues("admin", "deny")))
	assert.Equal(t, allowed+1, testutil.ToFloat64(metrics.AccessDecisions.WithLabelValues("author", "allow")))
}
