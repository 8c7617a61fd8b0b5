package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the access token without verifying its signature and
// returns the expiry claim. Verification is the server's job; this exists
// only so the UI can display when the session runs out. Returns false for
// opaque tokens or tokens without an exp claim.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
