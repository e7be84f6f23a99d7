package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for the tenant-scoped
// remote API.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. The "sub" claim carries
// the tenant identifier.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// TenantID is the cached "sub" claim.
	TenantID string `json:"-"`
}

// GetTenantID extracts the tenant identifier from the "sub" claim.
func (t *Token) GetTenantID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting tenant from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting tenant from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
