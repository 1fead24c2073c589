package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/modules/auth"
	"github.com/dmitrymomot/authkit/pkg/jwt"
)

func issueToken(t *testing.T, codec *jwt.Service) string {
	t.Helper()
	token, err := codec.Generate(jwt.Claims{
		Subject:      "b@b.com",
		Organization: "ACME",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return token
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	codec, err := jwt.NewFromString("test-secret")
	require.NoError(t, err)
	extractor := auth.NewExtractor(codec)

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, codec))

		claims, err := extractor.Extract(req)
		require.NoError(t, err)
		assert.Equal(t, "ACME", claims.Organization)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := extractor.Extract(req)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		_, err := extractor.Extract(req)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		_, err := extractor.Extract(req)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := codec.Generate(jwt.Claims{
			Subject:   "b@b.com",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		_, err = extractor.Extract(req)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other, err := jwt.NewFromString("other-secret")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, other))
		_, err = extractor.Extract(req)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestTokenSources(t *testing.T) {
	t.Parallel()

	codec, err := jwt.NewFromString("test-secret")
	require.NoError(t, err)
	token := issueToken(t, codec)

	t.Run("cookie source", func(t *testing.T) {
		extractor := auth.NewExtractorWithSource(codec, auth.CookieToken("access_token"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		claims, err := extractor.Extract(req)
		require.NoError(t, err)
		assert.Equal(t, "ACME", claims.Organization)

		_, err = extractor.Extract(httptest.NewRequest(http.MethodGet, "/", nil))
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("query source", func(t *testing.T) {
		extractor := auth.NewExtractorWithSource(codec, auth.QueryToken("token"))

		claims, err := extractor.Extract(httptest.NewRequest(http.MethodGet, "/?token="+token, nil))
		require.NoError(t, err)
		assert.Equal(t, "ACME", claims.Organization)

		_, err = extractor.Extract(httptest.NewRequest(http.MethodGet, "/", nil))
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("custom header source", func(t *testing.T) {
		extractor := auth.NewExtractorWithSource(codec, auth.HeaderToken("X-Access-Token"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Access-Token", token)

		claims, err := extractor.Extract(req)
		require.NoError(t, err)
		assert.Equal(t, "ACME", claims.Organization)
	})

	t.Run("nil source falls back to bearer", func(t *testing.T) {
		extractor := auth.NewExtractorWithSource(codec, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, err := extractor.Extract(req)
		require.NoError(t, err)
	})
}
