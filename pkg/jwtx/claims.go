package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tradewindmarket/vendas/pkg/idx"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 1 * time.Hour

// Claims are the access-token claims used across the service. The subject
// carries the client id and Email mirrors it for display and lookup; both
// are mandatory for a token to be accepted.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated client
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a client id.
func NewAccessClaims(
	clientID int64,
	email string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(clientID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		Email: email,
	}
}

// ClientID parses the subject claim back into a client id.
func (c *Claims) ClientID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaim
	}
	return id, nil
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// RequireIdentity rejects tokens missing the mandatory sub/email claims.
func (c *Claims) RequireIdentity() error {
	if c.Subject == "" || c.Email == "" {
		return ErrInvalidClaim
	}
	if _, err := c.ClientID(); err != nil {
		return err
	}
	return nil
}
