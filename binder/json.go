// Package binder decodes structured request bodies into Go values.
// Only the JSON concern is implemented; the login payload is the single
// body shape this service accepts.
package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Common binding errors
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
)

// BindJSON decodes the request body as JSON into v.
//
// The content type must be application/json (parameters such as charset are
// ignored). Decoding is strict: unknown fields and trailing data after the
// object are rejected, so a malformed payload fails here rather than
// producing a half-populated struct.
func BindJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Ensure the entire body was consumed.
	if err := decoder.Decode(new(json.RawMessage)); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}

	return nil
}
