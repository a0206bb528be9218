package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/middleware"
	"blog-cms/internal/service"
)

// AuthHandler signs authors in and out.
type AuthHandler struct {
	auth         service.AuthServiceInterface
	secureCookie bool
	now          func() time.Time
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure and should be set whenever the site is served over TLS.
func NewAuthHandler(authService service.AuthServiceInterface, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookie: secureCookie, now: time.Now}
}

// Login handles POST /api/auth/login. The token is set as an HttpOnly
// cookie and also returned in the body for API clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds domain.Credentials
	if !bindJSON(c, &creds) {
		return
	}

	session, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	h.setSessionCookie(c, session.Token, maxAge)

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt.Format(TimeFormat),
		"author":     session.Author,
	})
}

// Signout handles POST /api/auth/signout
func (h *AuthHandler) Signout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/session and reports the resolved viewer.
func (h *AuthHandler) Me(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer.IsAnonymous() {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"id":            viewer.ID,
		"role":          viewer.Role,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.secureCookie, true)
}
