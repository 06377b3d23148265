package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func limitedRouter(rl *RateLimiter, before ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(before, rl.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.Any("/limited", handlers...)
	return r
}

func post(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	_, client := newTestRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     3,
		KeyPrefix: "test",
	})
	r := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := post(r, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := post(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")

	// other clients have their own budget
	w = post(r, "10.0.0.2:1234")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterOnlyCountsPosts(t *testing.T) {
	_, client := newTestRedis(t)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test"})
	r := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1:1").Code)
}

func TestRateLimiterWindowExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test"})
	rl.now = func() time.Time { return now }
	r := limitedRouter(rl)

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1:1").Code)

	now = now.Add(time.Minute)
	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
}

func TestRateLimiterByUser(t *testing.T) {
	_, client := newTestRedis(t)
	rl := NewRecipeCreationRateLimiter(client)

	var current *models.User
	setUser := func(c *gin.Context) {
		c.Set(userKey, current)
		c.Next()
	}
	r := limitedRouter(rl, setUser)

	current = &models.User{ID: 1, Username: "alice"}
	for i := 0; i < 30; i++ {
		require.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1:1").Code)

	// same address, different user
	current = &models.User{ID: 2, Username: "bob"}
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr, client := newTestRedis(t)
	rl := NewAuthRateLimiter(client)
	r := limitedRouter(rl)

	mr.Close()

	w := post(r, "10.0.0.1:1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

func TestRateLimiterDisabledWithoutRedis(t *testing.T) {
	rl := NewAuthRateLimiter(nil)
	r := limitedRouter(rl)

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1").Code)
	}
}
