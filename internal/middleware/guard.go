package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/content"
	"blog-cms/internal/metrics"
)

const (
	// LoginPath is where anonymous viewers are sent.
	LoginPath = "/login"
	// AuthorPanelPath is where signed-in non-admins are sent from the admin panel.
	AuthorPanelPath = "/author-panel"
)

// RequireScope lets the request through when the viewer may enter scope.
// Anonymous viewers are redirected to the login page with a callback to the
// requested path. Signed-in viewers denied the admin panel are redirected
// to the author panel. A malformed viewer gets 403.
func RequireScope(scope content.Scope) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := GetViewer(c)

		decision, err := content.Authorize(viewer, scope)
		if err != nil {
			metrics.ObserveAccessDecision(string(scope), "invalid_viewer")
			RequestLogger(c).Warn("Rejected malformed viewer", "scope", scope, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		metrics.ObserveAccessDecision(string(scope), string(decision))
		if decision == content.Allow {
			c.Next()
			return
		}

		if viewer.IsAnonymous() {
			target := LoginPath + "?callbackUrl=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Redirect(http.StatusFound, AuthorPanelPath)
		c.Abort()
	}
}
