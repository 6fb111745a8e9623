package handler

import (
	"net/http"
	"time"
)

// Cookie names. The session cookie name is shared with the session gate.
const (
	sessionCookie = "token"
	otpCookie     = "otpToken"
)

// cookieWriter centralizes cookie attributes: HTTP-only, SameSite=Strict,
// Secure in production.
type cookieWriter struct {
	secure bool
}

func (c cookieWriter) set(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c cookieWriter) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
