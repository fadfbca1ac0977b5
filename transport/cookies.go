package transport

import (
	"net/http"

	"github.com/afribrok/marketplace-bff/cmd/config"
	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
)

func newCookie(cfg config.AuthConfig, name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cfg.CookieDomain,
		MaxAge:   maxAge,
		Secure:   cfg.CookieSecure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

// setSessionCookies mirrors the session into the cookies the front-end
// middleware reads. Only the token and session id are hidden from scripts.
func setSessionCookies(w http.ResponseWriter, cfg config.AuthConfig, res *model.AuthResult) {
	maxAge := int(cfg.SessionExpTime.Seconds())
	http.SetCookie(w, newCookie(cfg, constant.CookieToken, res.Token, maxAge, true))
	http.SetCookie(w, newCookie(cfg, constant.CookieSessionID, res.SessionID, maxAge, true))
	http.SetCookie(w, newCookie(cfg, constant.CookieRole, res.User.Role, maxAge, false))
	if res.TenantID != "" {
		http.SetCookie(w, newCookie(cfg, constant.CookieTenant, res.TenantID, maxAge, false))
		http.SetCookie(w, newCookie(cfg, constant.CookieTenantID, res.TenantID, maxAge, false))
	}
}

func clearSessionCookies(w http.ResponseWriter, cfg config.AuthConfig) {
	for _, name := range []string{
		constant.CookieToken,
		constant.CookieSessionID,
		constant.CookieRole,
		constant.CookieTenant,
		constant.CookieTenantID,
	} {
		http.SetCookie(w, newCookie(cfg, name, "", -1, false))
	}
}
