package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Credentials is the login request payload. It is transient input: validated
// and discarded, never stored.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service validates credential pairs and issues signed bearer tokens.
// The credential check is in-process; the service stands in for a real
// credential store while keeping the validation order contract.
type Service struct {
	cfg   Config
	codec *jwt.Service
	log   *slog.Logger
}

// NewService creates an authenticator with an explicitly injected token
// codec and logger.
func NewService(cfg Config, codec *jwt.Service, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cfg: cfg, codec: codec, log: log}
}

// Authorize validates the credential pair and issues a signed token.
//
// Checks short-circuit in a fixed order: empty fields are reported as
// ErrMissingCredentials before any value comparison, a mismatch as
// ErrWrongCredentials, and a signing failure as ErrTokenCreation. The same
// input always yields the same verdict, so callers never need to retry
// without changing it.
func (s *Service) Authorize(ctx context.Context, creds Credentials) (Token, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Token{}, ErrMissingCredentials
	}

	if !s.credentialsMatch(creds) {
		return Token{}, ErrWrongCredentials
	}

	now := time.Now()
	claims := jwt.Claims{
		ID:           uuid.NewString(),
		Subject:      s.cfg.Subject,
		Issuer:       s.cfg.Issuer,
		Organization: s.cfg.Organization,
		IssuedAt:     now.Unix(),
		ExpiresAt:    now.Add(s.cfg.TokenTTL).Unix(),
	}

	signed, err := s.codec.Generate(claims)
	if err != nil {
		return Token{}, errors.Join(ErrTokenCreation, err)
	}

	s.log.InfoContext(ctx, "client authorized",
		logger.Subject(claims.Subject),
		logger.Organization(claims.Organization),
	)

	return Token{AccessToken: signed, TokenType: "Bearer"}, nil
}

// credentialsMatch compares both fields in constant time. Both comparisons
// always run so the duration does not reveal which field was wrong.
func (s *Service) credentialsMatch(creds Credentials) bool {
	idOK := subtle.ConstantTimeCompare([]byte(creds.ClientID), []byte(s.cfg.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(creds.ClientSecret), []byte(s.cfg.ClientSecret)) == 1
	return idOK && secretOK
}
