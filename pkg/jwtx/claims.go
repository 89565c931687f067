package jwtx

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleAuthenticated is the role claim the identity provider puts on tokens
// that belong to a signed-in user. Anonymous API keys carry "anon".
const RoleAuthenticated = "authenticated"

// ErrNotAUser is returned by UserID for tokens that do not identify a user.
var ErrNotAUser = errors.New("jwtx: token does not identify a user")

// Claims are the access-token claims minted by the identity provider. Only
// the fields this service reads are declared.
type Claims struct {
	jwt.RegisteredClaims

	// Role is "authenticated" for user sessions.
	Role string `json:"role,omitempty"`

	// Email or Phone is whichever the one-time password was sent to.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// SessionID of the identity provider session.
	SessionID string `json:"session_id,omitempty"`

	IsAnonymous bool `json:"is_anonymous,omitempty"`
}

// UserID returns the stable user identifier carried in sub. It must be a
// UUID and the token must belong to a non-anonymous authenticated user.
func (c Claims) UserID() (string, error) {
	if c.Subject == "" || c.IsAnonymous {
		return "", ErrNotAUser
	}
	if c.Role != "" && c.Role != RoleAuthenticated {
		return "", ErrNotAUser
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return "", ErrNotAUser
	}
	return id.String(), nil
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf allowing leeway of clock skew.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
