package transport

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const attemptVisitorTTL = 10 * time.Minute

// AttemptLimiter is a per-IP token bucket for form posts that hit the
// marketplace API on behalf of anonymous or freshly signed-in users.
type AttemptLimiter struct {
	perMinute int

	mu        sync.Mutex
	visitors  map[string]*attemptVisitor
	lastSweep time.Time
	now       func() time.Time
}

type attemptVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewAttemptLimiter allows perMinute attempts per client with a burst of the
// same size. perMinute <= 0 disables the limiter.
func NewAttemptLimiter(perMinute int) *AttemptLimiter {
	return &AttemptLimiter{
		perMinute: perMinute,
		visitors:  make(map[string]*attemptVisitor),
		now:       time.Now,
	}
}

// Allow reports whether the client identified by key may make another attempt.
func (l *AttemptLimiter) Allow(key string) bool {
	if l.perMinute <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > attemptVisitorTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > attemptVisitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &attemptVisitor{limiter: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60.0), l.perMinute)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *AttemptLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !l.Allow(key) {
			logger.Ctx(r.Context()).Warn("[AttemptLimiter] throttled", zap.String("client", key), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "60")
			writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop set by the front-end proxy.
func clientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		if ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
