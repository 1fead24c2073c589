package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}        // raw token string
	claimsContextKey = &contextKey{name: "jwt_claims"} // verified claims
)

// SetToken returns a child context carrying the raw token string.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims returns a child context carrying verified claims. The binding
// lives only as long as the context, so claims attached to one request are
// never visible to another.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the raw token string from the context.
// The second return value is false if no token was attached.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the verified claims from the context.
// The second return value is false if no claims were attached.
func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}
