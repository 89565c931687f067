package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestClaimsUserID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(c *jwtx.Claims)
		want   string
		err    bool
	}{
		{name: "authenticated user", mutate: func(c *jwtx.Claims) {}, want: exampleSubject},
		{name: "uppercase uuid is canonicalised", mutate: func(c *jwtx.Claims) {
			c.Subject = "6F1C2A3E-9D4B-4A5C-8E7F-0123456789AB"
		}, want: exampleSubject},
		{name: "empty subject", mutate: func(c *jwtx.Claims) { c.Subject = "" }, err: true},
		{name: "non uuid subject", mutate: func(c *jwtx.Claims) { c.Subject = "user-123" }, err: true},
		{name: "anon role", mutate: func(c *jwtx.Claims) { c.Role = "anon" }, err: true},
		{name: "anonymous session", mutate: func(c *jwtx.Claims) { c.IsAnonymous = true }, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := userClaims(now)
			tt.mutate(&c)

			got, err := c.UserID()
			if tt.err {
				require.ErrorIs(t, err, jwtx.ErrNotAUser)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClaimsValidateNotBefore(t *testing.T) {
	now := time.Now()
	c := userClaims(now)
	c.NotBefore = c.ExpiresAt

	require.ErrorIs(t, c.ValidateExpiry(now, time.Second), jwtx.ErrNotYetValid)
	require.NoError(t, c.ValidateExpiry(now.Add(time.Hour), time.Second))
}

func TestClaimsValidateSkipsEmptyExpectations(t *testing.T) {
	c := userClaims(time.Now())
	require.NoError(t, c.ValidateIssuer(""))
	require.NoError(t, c.ValidateAudience(nil))
}
