package auth

import "errors"

// The module's failure taxonomy. Everything the verification path can go
// wrong on - absent header, wrong scheme, malformed token, bad signature,
// expired token - is deliberately collapsed into ErrInvalidToken so callers
// cannot probe which check failed.
var (
	ErrMissingCredentials = errors.New("auth: missing credentials")
	ErrWrongCredentials   = errors.New("auth: wrong credentials")
	ErrTokenCreation      = errors.New("auth: token creation error")
	ErrInvalidToken       = errors.New("auth: invalid token")
)
