package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoskitchen/backend/config"
	"github.com/leoskitchen/backend/internal/testhelpers"
)

func TestNewServerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDB(t)

	cfg := &config.Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "0",
		AllowedOrigins: []string{"http://localhost:5173"},
		JWTSecret:      testhelpers.TestJWTSecret,
	}

	srv := New(cfg, db, nil, nil)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")

	// Public recipe listing is mounted and answers without a token.
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Profile routes are mounted behind authentication.
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
