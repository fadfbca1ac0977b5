package transport

import (
	"net/http"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or mints one. The id is
// echoed back and forwarded to the marketplace API.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(constant.HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(constant.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(utilsContext.WithRequestID(r.Context(), id)))
		})
	}
}

// LoggingMiddleware logs HTTP requests and responses
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			log := logger.Ctx(r.Context())
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
			}
			if wrapped.statusCode >= http.StatusInternalServerError {
				log.Warn("HTTP request", fields...)
				return
			}
			log.Info("HTTP request", fields...)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
