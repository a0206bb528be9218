package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func newHealthRouter(p Pinger) *gin.Engine {
	h := NewHealthHandler(p, "1.0.0")
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		router := newHealthRouter(stubPinger{})

		w := doJSON(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body HealthResponse
		decode(t, w, &body)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "1.0.0", body.Version)
		assert.Equal(t, "healthy", body.Services["database"])
		assert.NotEmpty(t, body.Time)

		assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/ready", nil).Code)
	})

	t.Run("database down", func(t *testing.T) {
		router := newHealthRouter(stubPinger{err: errors.New("connection refused")})

		w := doJSON(router, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body HealthResponse
		decode(t, w, &body)
		assert.Equal(t, "unhealthy", body.Services["database"])

		assert.Equal(t, http.StatusServiceUnavailable, doJSON(router, http.MethodGet, "/ready", nil).Code)
		assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/live", nil).Code)
	})
}
