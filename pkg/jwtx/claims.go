package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is used when the service is not configured otherwise.
const DefaultAccessTokenTTL = 12 * time.Hour

// Claims are the access token claims issued by the membership service.
type Claims struct {
	jwt.RegisteredClaims

	// Role is one of guest, member, staff or admin at the time of issue.
	Role string `json:"role"`

	Username string `json:"username,omitempty"`
}

// NewAccessClaims builds claims for subject valid from now for ttl.
func NewAccessClaims(issuer, subject, username, role string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:     role,
		Username: username,
	}
}

// NewJTI returns a random URL-safe token identifier.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
