package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(limit gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(limit)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitPerWindow_EnforcesBudget(t *testing.T) {
	router := limitedRouter(middleware.RateLimitPerWindow(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitPerWindow_ZeroBudget(t *testing.T) {
	// A misconfigured budget of 0 must not panic; it clamps to 1.
	router := limitedRouter(middleware.RateLimitPerWindow(0, time.Minute))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware_RejectsUnknownOrigin(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
