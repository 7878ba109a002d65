package httpx

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth guards a handler with a single static user. It returns nil, a
// no-op in Chain, when user is empty.
func BasicAuth(realm, user, pass string) Middleware {
	if user == "" {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 ||
				subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
				WriteError(w, http.StatusUnauthorized, "unauthorized", "valid credentials required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
