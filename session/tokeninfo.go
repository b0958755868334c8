package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read off a bearer token without
// verifying it.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

// InspectToken peeks at a JWT's claims without signature verification.
// Diagnostics only (whoami output, hydration logging); token validity
// is always the backend's call, never decided here.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parsing token: %w", err)
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = time.Now().After(exp.Time)
	}
	return info, nil
}
