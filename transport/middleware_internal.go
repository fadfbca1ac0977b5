package transport

import (
	"net/http"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key leaves
// the internal routes open, which is what local development runs with.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" && r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
