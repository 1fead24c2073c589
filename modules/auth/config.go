package auth

import "time"

// Config carries everything the auth module needs: the signing secret, the
// accepted credential pair, and the identity written into issued tokens.
// JWT_SECRET has no default on purpose - a process without a signing secret
// must not start.
type Config struct {
	JWTSecret    string        `env:"JWT_SECRET,required"`                          // symmetric signing secret
	ClientID     string        `env:"AUTH_CLIENT_ID" envDefault:"foo"`              // accepted client identifier
	ClientSecret string        `env:"AUTH_CLIENT_SECRET" envDefault:"bar"`          // accepted client secret
	Subject      string        `env:"AUTH_TOKEN_SUBJECT" envDefault:"b@b.com"`      // subject written into issued tokens
	Organization string        `env:"AUTH_TOKEN_ORGANIZATION" envDefault:"ACME"`    // organization written into issued tokens
	Issuer       string        `env:"AUTH_TOKEN_ISSUER" envDefault:"authkit"`       // iss claim of issued tokens
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"87600h"`           // validity window of issued tokens
}
