package jwt

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every token issued by this module.
// Temporal fields are Unix timestamps in seconds.
type Claims struct {
	ID           string `json:"jti,omitempty"`     // unique token identifier
	Subject      string `json:"sub,omitempty"`     // authenticated entity
	Issuer       string `json:"iss,omitempty"`     // issuing service
	Organization string `json:"company,omitempty"` // organization the subject belongs to
	IssuedAt     int64  `json:"iat,omitempty"`     // creation time
	ExpiresAt    int64  `json:"exp,omitempty"`     // expiration time, mandatory on signing
}

// GetExpirationTime implements gojwt.Claims.
func (c *Claims) GetExpirationTime() (*gojwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return gojwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implements gojwt.Claims.
func (c *Claims) GetIssuedAt() (*gojwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return gojwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

// GetNotBefore implements gojwt.Claims. Tokens are valid immediately, there
// is no not-before lower bound in this claim shape.
func (c *Claims) GetNotBefore() (*gojwt.NumericDate, error) { return nil, nil }

// GetIssuer implements gojwt.Claims.
func (c *Claims) GetIssuer() (string, error) { return c.Issuer, nil }

// GetSubject implements gojwt.Claims.
func (c *Claims) GetSubject() (string, error) { return c.Subject, nil }

// GetAudience implements gojwt.Claims.
func (c *Claims) GetAudience() (gojwt.ClaimStrings, error) { return nil, nil }

// Service signs and verifies tokens using HMAC-SHA256. The signing key is
// kept in memory only and is never mutated after construction.
type Service struct {
	signingKey []byte
}

// New creates a token service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a token service from a string signing key.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(signingKey string) (*Service, error) {
	if signingKey == "" {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: []byte(signingKey)}, nil
}

// Generate signs the claims and returns the compact token string.
// The token format carries no separate lifetime field, so an expiration
// is mandatory: claims without one are rejected with ErrMissingExpiration.
func (s *Service) Generate(claims Claims) (string, error) {
	if claims.ExpiresAt == 0 {
		return "", ErrMissingExpiration
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return signed, nil
}

// Parse verifies a token string and returns its claims. Signature
// verification and the expiry check run on every call; there is no
// verification-skipping mode. Parse is pure computation, it performs no I/O.
func (s *Service) Parse(tokenString string) (Claims, error) {
	var claims Claims
	_, err := gojwt.ParseWithClaims(tokenString, &claims,
		func(t *gojwt.Token) (any, error) {
			// Reject unexpected algorithms to prevent algorithm confusion attacks.
			if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
				return nil, ErrUnexpectedSigningMethod
			}
			return s.signingKey, nil
		},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, gojwt.ErrTokenExpired):
			return Claims{}, ErrExpiredToken
		case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSignature
		case errors.Is(err, ErrUnexpectedSigningMethod):
			return Claims{}, ErrUnexpectedSigningMethod
		default:
			return Claims{}, ErrInvalidToken
		}
	}
	return claims, nil
}
