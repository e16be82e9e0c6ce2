package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, 60)

	t.Run("allows up to the limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			allowed, _, _ := rl.Allow("1.2.3.4")
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}
	})

	t.Run("blocks over the limit", func(t *testing.T) {
		allowed, remaining, _ := rl.Allow("1.2.3.4")
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		allowed, _, _ := rl.Allow("5.6.7.8")
		assert.True(t, allowed)
	})
}

func TestRateLimit_Middleware(t *testing.T) {
	handler := RateLimit(2, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	newRequest := func() *http.Request {
		req := httptest.NewRequest("GET", "/auth/login", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		return req
	}

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
}

func TestClientIP(t *testing.T) {
	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		assert.Equal(t, "10.0.0.1", clientIP(req))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.3")
		assert.Equal(t, "10.0.0.3", clientIP(req))
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.4:5678"
		assert.Equal(t, "10.0.0.4", clientIP(req))
	})
}
