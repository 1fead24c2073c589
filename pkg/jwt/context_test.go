package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

func TestClaimsContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get claims", func(t *testing.T) {
		claims := jwt.Claims{Subject: "b@b.com", Organization: "ACME", ExpiresAt: 2000000000}

		ctx := jwt.SetClaims(context.Background(), claims)
		got, ok := jwt.GetClaims(ctx)
		require.True(t, ok)
		assert.Equal(t, claims, got)
	})

	t.Run("claims absent outside the binding", func(t *testing.T) {
		got, ok := jwt.GetClaims(context.Background())
		require.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("bindings are independent", func(t *testing.T) {
		base := context.Background()
		ctxA := jwt.SetClaims(base, jwt.Claims{Organization: "ACME"})
		ctxB := jwt.SetClaims(base, jwt.Claims{Organization: "Globex"})

		a, ok := jwt.GetClaims(ctxA)
		require.True(t, ok)
		b, ok := jwt.GetClaims(ctxB)
		require.True(t, ok)

		assert.Equal(t, "ACME", a.Organization)
		assert.Equal(t, "Globex", b.Organization)
	})
}

func TestTokenContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get token", func(t *testing.T) {
		ctx := jwt.SetToken(context.Background(), "raw-token")
		got, ok := jwt.GetToken(ctx)
		require.True(t, ok)
		assert.Equal(t, "raw-token", got)
	})

	t.Run("token absent outside the binding", func(t *testing.T) {
		_, ok := jwt.GetToken(context.Background())
		require.False(t, ok)
	})
}
