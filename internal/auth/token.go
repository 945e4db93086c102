package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies the HS256 bearer tokens used on guarded
// routes.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret and lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs the provided claims verbatim, adding issued-at and expiry.
// The caller's claims are trusted as-is; at minimum an email is expected.
func (t *TokenManager) Issue(claims map[string]any) (string, error) {
	now := time.Now()
	mapped := jwt.MapClaims{}
	for k, v := range claims {
		mapped[k] = v
	}
	mapped["iat"] = now.Unix()
	mapped["exp"] = now.Add(t.ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapped)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token, returning its claims. Expired tokens,
// bad signatures, and non-HS256 algorithms are all rejected.
func (t *TokenManager) Verify(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
