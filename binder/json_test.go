package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/binder"
)

type loginPayload struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func jsonRequest(t *testing.T, body, contentType string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/authorization", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{"client_id":"foo","client_secret":"bar"}`, "application/json"), &v)
		require.NoError(t, err)
		assert.Equal(t, "foo", v.ClientID)
		assert.Equal(t, "bar", v.ClientSecret)
	})

	t.Run("content type with charset", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{"client_id":"foo","client_secret":"bar"}`, "application/json; charset=utf-8"), &v)
		require.NoError(t, err)
	})

	t.Run("missing content type", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{}`, ""), &v)
		require.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{}`, "text/plain"), &v)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, ``, "application/json"), &v)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{"client_id":`, "application/json"), &v)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{"client_id":"foo","extra":true}`, "application/json"), &v)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		var v loginPayload
		err := binder.BindJSON(jsonRequest(t, `{"client_id":"foo"}{"again":1}`, "application/json"), &v)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}
