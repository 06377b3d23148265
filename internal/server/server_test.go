package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		SessionSecret:      "0123456789abcdef0123456789abcdef",
		SessionTTL:         time.Hour,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

func TestNew(t *testing.T) {
	db := testhelpers.SetupSQLite(t)

	server, err := New(testConfig(), db, nil, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, server)

	// Test health check endpoint
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestNewWithRateLimiting(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	server, err := New(testConfig(), db, client, logger.Nop())
	require.NoError(t, err)

	form := url.Values{"username": {"nobody"}, "password": {"wrong"}}.Encode()
	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "192.0.2.1:4000"
		w := httptest.NewRecorder()
		server.Handler().ServeHTTP(w, req)
		last = w.Code
		if i < 10 {
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestStartAndShutdown(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	server, err := New(testConfig(), db, nil, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	// give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
