package httpx

import (
	"net/http"
	"time"
)

// DefaultSessionCookieName is the cookie the browser frontend expects.
const DefaultSessionCookieName = "jwt"

// SessionCookie describes how the session token is handed to browsers.
type SessionCookie struct {
	Name     string
	TTL      time.Duration
	Secure   bool
	SameSite http.SameSite
}

// NewSessionCookie returns cookie settings for the deployment mode.
// Production frontends live on another site, so the cookie must be
// SameSite=None which browsers only accept together with Secure.
func NewSessionCookie(ttl time.Duration, production bool) SessionCookie {
	c := SessionCookie{
		Name:     DefaultSessionCookieName,
		TTL:      ttl,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// Set writes the session cookie carrying token.
func (c SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		Expires:  time.Now().Add(c.TTL),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Clear expires the session cookie immediately.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Read returns the token from the request, or "" if absent.
func (c SessionCookie) Read(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}
