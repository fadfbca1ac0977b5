package transport

import (
	"net/http"
	"strings"

	"github.com/afribrok/marketplace-bff/application/user"
	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionMiddleware turns the afribrok-* cookies (or a bearer header) into a
// model.Session on the request context. Requests without a usable token pass
// through anonymously; the gating middlewares decide what needs one.
func SessionMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Ctx(r.Context()).Debug("[SessionMiddleware] token rejected", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			session := model.Session{
				SessionID: cookieValue(r, constant.CookieSessionID),
				Token:     token,
				TenantID:  cookieValue(r, constant.CookieTenantID),
				Role:      claims.Role,
			}
			if session.TenantID == "" {
				session.TenantID = cookieValue(r, constant.CookieTenant)
			}
			if session.TenantID == "" {
				session.TenantID = claims.TenantID
			}
			if session.Role == "" {
				session.Role = cookieRole(r)
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithSession(r.Context(), session)))
		})
	}
}

// RequireSession rejects anonymous requests with the "please sign in" error.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utilsContext.GetSession(r.Context()); !ok {
			writeError(w, errors.SetCustomError(constant.ErrAuthRequired))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin lets ADMIN and SUPER_ADMIN through.
func RequireAdmin() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utilsContext.GetSession(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrAuthRequired))
				return
			}
			if !session.Role.IsAdmin() {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return cookieValue(r, constant.CookieToken)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// cookieRole reads the script-readable role cookie. SUPER_ADMIN is never taken
// from it and unknown roles are dropped.
func cookieRole(r *http.Request) constant.Role {
	role := constant.Role(strings.ToUpper(cookieValue(r, constant.CookieRole)))
	switch role {
	case constant.RoleAdmin, constant.RoleBroker, constant.RoleBuyer:
		return role
	}
	return ""
}
