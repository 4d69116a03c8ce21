package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry reads the exp claim of a bearer token without verifying its
// signature. The portal never holds the backend's signing key; the backend
// stays the authority on validity. ok is false for opaque tokens or tokens
// without exp.
func TokenExpiry(token string) (expiresAt time.Time, ok bool) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}, false
	}
	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case int64:
		return time.Unix(exp, 0), true
	}
	return time.Time{}, false
}

// TokenExpired reports a token whose exp claim is at or before now. Opaque
// tokens are never considered expired here.
func TokenExpired(token string, now time.Time) bool {
	expiresAt, ok := TokenExpiry(token)
	return ok && !now.Before(expiresAt)
}
