//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"flexin/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func performGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("success: written responses pass through untouched", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := performGet(t, engine, "/ok")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
	})

	t.Run("success: a status set without a body is finalized", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/empty", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := performGet(t, engine, "/empty")
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("success: a handler that never responds becomes a 500", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/silent", func(c *gin.Context) {})

		w := performGet(t, engine, "/silent")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	t.Run("success: a panic is turned into a 500 response", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		w := performGet(t, engine, "/panic")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
	})
}
