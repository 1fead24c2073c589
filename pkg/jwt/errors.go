package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrMissingExpiration       = errors.New("jwt: claims have no expiration")
	ErrSigningFailed           = errors.New("jwt: failed to sign claims")
)
