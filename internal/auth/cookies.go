package auth

import (
	"net/http"
	"time"
)

const (
	AccessCookie  = "token"
	RefreshCookie = "refresh_token"
)

// CookiePackager renders issued token values as secure, http-only,
// same-site-strict cookies. Secure is false only for local development
// over plain HTTP.
type CookiePackager struct {
	Secure bool
}

// CookieBundle lists the cookies a response must set and clear. The core
// returns it; the transport layer applies it.
type CookieBundle struct {
	Set   []*http.Cookie
	Clear []*http.Cookie
}

func (b CookieBundle) Apply(w http.ResponseWriter) {
	for _, c := range b.Set {
		http.SetCookie(w, c)
	}
	for _, c := range b.Clear {
		http.SetCookie(w, c)
	}
}

// Issue builds the bundle for a freshly issued token pair. An empty refresh
// value means the session was not remembered and no refresh cookie is set.
func (p CookiePackager) Issue(access string, accessTTL time.Duration, refresh string) CookieBundle {
	b := CookieBundle{
		Set: []*http.Cookie{p.cookie(AccessCookie, access, accessTTL)},
	}
	if refresh != "" {
		b.Set = append(b.Set, p.cookie(RefreshCookie, refresh, RefreshTTL))
	}
	return b
}

// Expire builds the bundle that deletes both cookies.
func (p CookiePackager) Expire() CookieBundle {
	return CookieBundle{
		Clear: []*http.Cookie{p.expired(AccessCookie), p.expired(RefreshCookie)},
	}
}

func (p CookiePackager) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	}
}

func (p CookiePackager) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	}
}
