package auth

import (
	"io"
	"net/http"

	"github.com/dmitrymomot/authkit/binder"
	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// HandleAuthorize is the login endpoint: it decodes the credential pair,
// runs it through Authorize, and returns either the signed token or the
// mapped error response.
func (s *Service) HandleAuthorize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		if err := binder.BindJSON(r, &creds); err != nil {
			// An undecodable body carries no credentials.
			respondError(w, ErrMissingCredentials)
			return
		}

		token, err := s.Authorize(r.Context(), creds)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, token)
	}
}

// protectedResponse echoes the identity established for the request.
type protectedResponse struct {
	Message string     `json:"message"`
	Claims  jwt.Claims `json:"claims"`
}

// HandleProtected returns the verified claims bound by the protection
// middleware. Reaching this handler without claims in context means the
// route was mounted without Protect, which is a wiring bug.
func (s *Service) HandleProtected() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.GetClaims(r.Context())
		if !ok {
			respondError(w, ErrInvalidToken)
			return
		}

		respondJSON(w, http.StatusOK, protectedResponse{
			Message: "Welcome to the protected area",
			Claims:  claims,
		})
	}
}

// HandleProtectedEcho echoes the posted text back to an authenticated
// caller, logging the identity it ran under.
func (s *Service) HandleProtectedEcho() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.GetClaims(r.Context())
		if !ok {
			respondError(w, ErrInvalidToken)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Unreadable body"})
			return
		}

		s.log.InfoContext(r.Context(), "echo for authenticated client",
			logger.Subject(claims.Subject),
			logger.Organization(claims.Organization),
		)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
