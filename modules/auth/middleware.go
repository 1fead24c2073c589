package auth

import (
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// Protect gates a group of routes behind identity verification.
//
// On success the verified claims are bound into the request context via
// jwt.SetClaims and the wrapped chain runs; the binding is per-request, so
// concurrent requests never observe each other's identity, and it vanishes
// when the request completes. On failure the middleware short-circuits with
// the invalid-token response and the wrapped chain never runs.
func Protect(extractor IdentityExtractor) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := extractor.Extract(r)
			if err != nil {
				respondError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetClaims(r.Context(), claims)))
		})
	}
}
