package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcastr/internal/services/cache"
)

func setupCachedRouter(t *testing.T, status int) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.NewMemoryCache(1)
	t.Cleanup(store.Stop)

	calls := 0
	router := gin.New()
	router.Use(CacheMiddleware(CacheConfig{
		Cache:      store,
		DefaultTTL: time.Minute,
		Enabled:    true,
	}))
	router.GET("/api/v1/episodes", func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"count": calls})
	})
	return router, &calls
}

func get(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCacheMiddleware_HitAndMiss(t *testing.T) {
	router, calls := setupCachedRouter(t, http.StatusOK)

	first := get(router, "/api/v1/episodes?limit=12", nil)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get(router, "/api/v1/episodes?limit=12", nil)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, *calls)

	// different query is a different entry
	get(router, "/api/v1/episodes?limit=5", nil)
	assert.Equal(t, 2, *calls)
}

func TestCacheMiddleware_ETag(t *testing.T) {
	router, _ := setupCachedRouter(t, http.StatusOK)

	get(router, "/api/v1/episodes", nil)
	hit := get(router, "/api/v1/episodes", nil)
	etag := hit.Header().Get("ETag")
	require.NotEmpty(t, etag)

	notModified := get(router, "/api/v1/episodes", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, notModified.Code)
	assert.Empty(t, notModified.Body.String())
}

func TestCacheMiddleware_Bypass(t *testing.T) {
	router, calls := setupCachedRouter(t, http.StatusOK)

	get(router, "/api/v1/episodes", nil)
	w := get(router, "/api/v1/episodes", map[string]string{"Cache-Control": "no-cache"})
	assert.Equal(t, "BYPASS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, *calls)
}

func TestCacheMiddleware_ErrorsNotCached(t *testing.T) {
	router, calls := setupCachedRouter(t, http.StatusBadGateway)

	get(router, "/api/v1/episodes", nil)
	w := get(router, "/api/v1/episodes", nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 2, *calls)
}

func TestTTLFor(t *testing.T) {
	config := CacheConfig{
		DefaultTTL: time.Minute,
		TTLByPath: map[string]time.Duration{
			"/api/v1/episodes":  10 * time.Minute,
			"/api/v1/episodes/": time.Hour,
		},
	}

	assert.Equal(t, 10*time.Minute, ttlFor(config, "/api/v1/episodes"))
	assert.Equal(t, time.Hour, ttlFor(config, "/api/v1/episodes/abc"))
	assert.Equal(t, time.Minute, ttlFor(config, "/health"))
}

func TestGenerateCacheKey(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/api/v1/episodes?b=2&a=1", nil)
	b := httptest.NewRequest(http.MethodGet, "/api/v1/episodes?a=1&b=2", nil)
	assert.Equal(t, generateCacheKey(a), generateCacheKey(b))
	assert.Equal(t, "http:/api/v1/episodes:a=1:b=2", generateCacheKey(a))
}
