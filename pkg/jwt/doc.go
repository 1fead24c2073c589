// Package jwt provides signing, verification, and context plumbing for the
// bearer tokens issued by authkit.
//
// The implementation is built on github.com/golang-jwt/jwt/v5 and restricted
// to the HS256 (HMAC-SHA256) algorithm. Service wraps signing and
// verification of one fixed claim shape, Claims, which carries the subject,
// the organization, and the mandatory expiration timestamp.
//
// Context helpers attach a verified Claims value (and optionally the raw
// token) to a context.Context so downstream handlers can read the identity
// established for the current request without it being threaded through as a
// parameter.
//
// # Usage
//
//	svc, err := jwt.NewFromString("super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Generate(jwt.Claims{
//	    Subject:      "b@b.com",
//	    Organization: "ACME",
//	    ExpiresAt:    time.Now().Add(24 * time.Hour).Unix(),
//	})
//
//	claims, err := svc.Parse(token)
//
// # Error Handling
//
// Verification failures are reported as sentinel errors (ErrExpiredToken,
// ErrInvalidSignature, ErrInvalidToken) comparable with errors.Is. Callers
// that do not care about the distinction can treat all of them as an invalid
// token; the protection middleware in modules/auth does exactly that.
package jwt
