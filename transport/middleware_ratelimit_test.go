package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewAttemptLimiter(3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "attempt %d", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own bucket")

	// 3 per minute refills one token every 20s
	now = now.Add(21 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestAttemptLimiter_Disabled(t *testing.T) {
	l := NewAttemptLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
}

func TestAttemptLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewAttemptLimiter(1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(attemptVisitorTTL + time.Minute)
	l.Allow("10.0.0.2")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestAttemptLimiter_Middleware(t *testing.T) {
	l := NewAttemptLimiter(1)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	newReq := func(forwarded string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "192.0.2.10:51234"
		if forwarded != "" {
			req.Header.Set("X-Forwarded-For", forwarded)
		}
		return req
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newReq(""))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, newReq(""))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"code":"0010"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, newReq("203.0.113.7, 10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
