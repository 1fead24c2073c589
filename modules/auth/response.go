package auth

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorResponse is the wire shape of every failure from this module. No
// internal detail beyond the fixed message ever reaches the response body.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError converts the module's error taxonomy into an HTTP status and
// a structured error body. Every error is handled at this boundary; nothing
// propagates past it.
func respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, ErrMissingCredentials):
		status, message = http.StatusBadRequest, "Missing credentials"
	case errors.Is(err, ErrWrongCredentials):
		status, message = http.StatusUnauthorized, "Wrong credentials"
	case errors.Is(err, ErrInvalidToken):
		status, message = http.StatusBadRequest, "Invalid token"
	case errors.Is(err, ErrTokenCreation):
		status, message = http.StatusInternalServerError, "Token creation error"
	default:
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	respondJSON(w, status, errorResponse{Error: message})
}
