package auth

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// IdentityExtractor locates and verifies the caller's identity on a request.
// The protection middleware depends on this abstraction rather than on a
// concrete token transport.
type IdentityExtractor interface {
	Extract(r *http.Request) (jwt.Claims, error)
}

// TokenSourceFunc locates the raw token string on an HTTP request.
type TokenSourceFunc func(r *http.Request) (string, error)

// Extractor verifies tokens located by a TokenSourceFunc. Every failure -
// missing token, wrong scheme, bad signature, expired claims - surfaces as
// ErrInvalidToken; the distinction is intentionally not exposed.
type Extractor struct {
	codec  *jwt.Service
	source TokenSourceFunc
}

// NewExtractor creates an extractor reading bearer tokens from the
// Authorization header, the standard transport per RFC 6750.
func NewExtractor(codec *jwt.Service) *Extractor {
	return NewExtractorWithSource(codec, BearerToken)
}

// NewExtractorWithSource creates an extractor with a custom token source,
// such as CookieToken or QueryToken.
func NewExtractorWithSource(codec *jwt.Service, source TokenSourceFunc) *Extractor {
	if source == nil {
		source = BearerToken
	}
	return &Extractor{codec: codec, source: source}
}

// Extract implements IdentityExtractor. It reads only the request and
// performs no I/O.
func (e *Extractor) Extract(r *http.Request) (jwt.Claims, error) {
	raw, err := e.source(r)
	if err != nil {
		return jwt.Claims{}, ErrInvalidToken
	}

	claims, err := e.codec.Parse(raw)
	if err != nil {
		return jwt.Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts a token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

// CookieToken returns a token source reading from the named cookie.
// Useful for browser clients where the Authorization header is impractical.
func CookieToken(cookieName string) TokenSourceFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return "", ErrInvalidToken
		}
		return cookie.Value, nil
	}
}

// QueryToken returns a token source reading from a URL query parameter.
// Generally discouraged because tokens end up in logs and referrer headers.
func QueryToken(paramName string) TokenSourceFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}

// HeaderToken returns a token source reading from a custom header.
func HeaderToken(headerName string) TokenSourceFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrInvalidToken
		}
		return token, nil
	}
}
