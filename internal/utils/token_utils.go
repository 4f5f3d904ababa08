package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes a locally signed bearer token.
type TokenParams struct {
	OwnerID  string
	Secret   string
	Issuer   string // omitted when empty
	Audience string // omitted when empty
	TTL      time.Duration
}

// GenerateJWT signs an HS256 token whose subject is the owner.
// Used for local development and tests; production tokens come from the identity provider.
func GenerateJWT(p TokenParams, now time.Time) (string, error) {
	if p.OwnerID == "" {
		return "", fmt.Errorf("owner ID is required")
	}
	if p.Secret == "" {
		return "", fmt.Errorf("signing secret is required")
	}
	if p.TTL <= 0 {
		return "", fmt.Errorf("token lifetime must be positive")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    p.Issuer,
		Subject:   p.OwnerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if p.Audience != "" {
		claims.Audience = jwt.ClaimStrings{p.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.Secret))
}
