package httpx

import (
	"net/http"
	"strings"

	"github.com/lubana/membership/pkg/jwtx"
	"github.com/lubana/membership/pkg/slogx"
)

// TokenVerifier is satisfied by *jwtx.Verifier.
type TokenVerifier interface {
	Verify(raw string) (*jwtx.Claims, error)
}

// AuthnMiddleware rejects requests without a valid bearer token and stores
// the token's principal in the request context.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				slogx.FromContext(ctx).Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			p := Principal{
				UserID:   claims.Subject,
				Username: claims.Username,
				Role:     claims.Role,
			}
			ctx = WithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "user_id", p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 bearer error.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
