// Package auth implements the request-scoped authentication and
// authorization layer: issuing bearer tokens from a credential pair,
// verifying tokens on protected routes, and making the verified identity
// available to downstream handlers for the duration of one request.
//
// The module is built from three pieces. Service validates credentials and
// issues signed tokens (the login endpoint's logic). IdentityExtractor
// locates and verifies the bearer token on an incoming request. Protect
// wraps a route group: it runs the extractor, binds the verified claims
// into the request context on success, and short-circuits with an
// invalid-token response on failure, before the wrapped handlers run.
//
//	codec, _ := jwt.NewFromString(cfg.JWTSecret)
//	svc := auth.NewService(cfg, codec, log)
//
//	r := chi.NewRouter()
//	auth.Mount(r, svc, auth.NewExtractor(codec))
//
// All failures map to fixed JSON bodies at the HTTP boundary: missing
// credentials (400), wrong credentials (401), token creation error (500),
// and invalid token (400) for every verification failure.
package auth
