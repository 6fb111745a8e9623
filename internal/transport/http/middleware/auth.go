package middleware

import (
	"context"
	"net/http"

	jwtinfra "github.com/dianotes-api/internal/infrastructure/jwt"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// SessionCookie is the name of the HTTP-only session cookie.
const SessionCookie = "token"

// Auth is the session gate: it admits requests carrying a valid session
// cookie and attaches the decoded identity to the request context.
// A missing cookie is 401; a present but invalid or expired one is 403.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Access token required")
				return
			}
			claims, err := provider.VerifySession(cookie.Value)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts session claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.SessionClaims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.SessionClaims)
	return c, ok
}
