package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/logger"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "session"
	// ViewerKey is the context key for the resolved viewer.
	ViewerKey = "viewer"
)

// TokenParser verifies a session token.
type TokenParser interface {
	ParseToken(token string) (domain.Viewer, error)
}

// viewerValue is what Session stores under ViewerKey.
type viewerValue struct {
	domain.Viewer
}

// Session resolves the viewer for every request from the session cookie or
// an Authorization bearer token. Missing, expired or forged tokens resolve
// to the anonymous viewer; the request is never rejected here.
func Session(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := domain.Anonymous()

		if token := sessionToken(c); token != "" {
			parsed, err := parser.ParseToken(token)
			if err != nil {
				logger.Debug("Ignoring session token", "request_id", GetRequestID(c), "error", err)
			} else {
				viewer = parsed
			}
		}

		c.Set(ViewerKey, viewerValue{viewer})
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// GetViewer returns the viewer resolved by Session, or the anonymous viewer
// when Session did not run.
func GetViewer(c *gin.Context) domain.Viewer {
	if v, ok := c.Get(ViewerKey); ok {
		if viewer, ok := v.(viewerValue); ok {
			return viewer.Viewer
		}
	}
	return domain.Anonymous()
}

// SetViewer stores viewer on c. Handlers under test use it in place of
// Session.
func SetViewer(c *gin.Context, viewer domain.Viewer) {
	c.Set(ViewerKey, viewerValue{viewer})
}
