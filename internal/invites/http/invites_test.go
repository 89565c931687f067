package http_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
	"github.com/stretchr/testify/require"
)

func TestCreateInvite(t *testing.T) {
	ts := newTestServer(t)
	founder := ts.founder(t)

	inv, err := founder.CreateInvite(t.Context(), "  Sam from the climbing gym  ")
	require.NoError(t, err)
	require.NotEmpty(t, inv.ID)
	require.Len(t, inv.Code, 8)
	require.Equal(t, founderID, inv.InviterID)
	require.Equal(t, "Sam from the climbing gym", inv.Name)
	require.False(t, inv.CreatedAt.IsZero())
	require.Nil(t, inv.UsedAt)
	require.Nil(t, inv.RevokedAt)

	t.Run("second invite within a day is rate limited", func(t *testing.T) {
		_, err := founder.CreateInvite(t.Context(), "Alex")
		require.ErrorIs(t, err, vouchsdk.ErrInviteRateLimited)

		var apiErr *vouchsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "You can only create one invite code every 24 hours.", apiErr.Description)
	})
}

func TestCreateInviteValidation(t *testing.T) {
	ts := newTestServer(t)
	founder := ts.founder(t)

	_, err := founder.CreateInvite(t.Context(), "   ")
	require.ErrorIs(t, err, vouchsdk.ErrInvalidRequest)
}

func TestInviteEndpointsRequireAuthentication(t *testing.T) {
	ts := newTestServer(t)
	anon := ts.client.WithToken("")

	_, err := anon.CreateInvite(t.Context(), "Sam")
	require.ErrorIs(t, err, vouchsdk.ErrUnauthorized)

	_, err = anon.ListInvites(t.Context())
	require.ErrorIs(t, err, vouchsdk.ErrUnauthorized)

	_, err = anon.RevokeInvite(t.Context(), "01J0000000000000000000000")
	require.ErrorIs(t, err, vouchsdk.ErrUnauthorized)

	_, err = ts.client.WithToken("not.a.token").ListInvites(t.Context())
	require.ErrorIs(t, err, vouchsdk.ErrUnauthorized)
}

func TestInviteEndpointsRequireProfile(t *testing.T) {
	ts := newTestServer(t)
	s := ts.session(t, strangerID)

	_, err := s.CreateInvite(t.Context(), "Sam")
	require.ErrorIs(t, err, vouchsdk.ErrProfileRequired)

	_, err = s.ListInvites(t.Context())
	require.ErrorIs(t, err, vouchsdk.ErrProfileRequired)

	_, err = s.RevokeInvite(t.Context(), "01J0000000000000000000000")
	require.ErrorIs(t, err, vouchsdk.ErrProfileRequired)
}

func TestRevokeInvite(t *testing.T) {
	ts := newTestServer(t)
	founder := ts.founder(t)
	other := ts.member(t, founder, inviteeID, "Sam")

	// The founder's daily invite went to Sam; the new member issues one.
	inv, err := other.CreateInvite(t.Context(), "Alex")
	require.NoError(t, err)

	t.Run("non-owner gets not found", func(t *testing.T) {
		_, err := founder.RevokeInvite(t.Context(), inv.ID)
		require.ErrorIs(t, err, vouchsdk.ErrNotFound)

		v, err := ts.client.ValidateInviteCode(t.Context(), inv.Code)
		require.NoError(t, err)
		require.True(t, v.Valid, "invite must be untouched")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := other.RevokeInvite(t.Context(), "not-an-id")
		require.ErrorIs(t, err, vouchsdk.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := other.RevokeInvite(t.Context(), " ")
		require.ErrorIs(t, err, vouchsdk.ErrInvalidRequest)
	})

	t.Run("owner revokes", func(t *testing.T) {
		revoked, err := other.RevokeInvite(t.Context(), inv.ID)
		require.NoError(t, err)
		require.Equal(t, inv.ID, revoked.ID)
		require.NotNil(t, revoked.RevokedAt)
		require.Nil(t, revoked.UsedAt)
	})

	t.Run("second revoke conflicts", func(t *testing.T) {
		_, err := other.RevokeInvite(t.Context(), inv.ID)
		require.ErrorIs(t, err, vouchsdk.ErrInviteNotActive)
	})

	t.Run("revoked code no longer validates", func(t *testing.T) {
		v, err := ts.client.ValidateInviteCode(t.Context(), inv.Code)
		require.NoError(t, err)
		require.False(t, v.Valid)
		require.Equal(t, "revoked", v.Reason)
		require.Equal(t, "This invite code has been revoked.", v.Error)
	})

	t.Run("revoked invite does not count against the limit", func(t *testing.T) {
		_, err := other.CreateInvite(t.Context(), "Alex again")
		require.NoError(t, err)
	})
}

func TestListInvites(t *testing.T) {
	ts := newTestServer(t)
	founder := ts.founder(t)

	list, err := founder.ListInvites(t.Context())
	require.NoError(t, err)
	require.NotNil(t, list.Active)
	require.NotNil(t, list.Past)
	require.Empty(t, list.Active)
	require.Empty(t, list.Past)

	ts.member(t, founder, inviteeID, "Sam")

	list, err = founder.ListInvites(t.Context())
	require.NoError(t, err)
	require.Empty(t, list.Active)
	require.Len(t, list.Past, 1)
	require.NotNil(t, list.Past[0].UsedBy)
	require.Equal(t, inviteeID, *list.Past[0].UsedBy)
}

func TestValidateInviteCode(t *testing.T) {
	ts := newTestServer(t)
	founder := ts.founder(t)

	inv, err := founder.CreateInvite(t.Context(), "Sam")
	require.NoError(t, err)

	t.Run("valid and case-insensitive", func(t *testing.T) {
		v, err := ts.client.ValidateInviteCode(t.Context(), "  "+strings.ToLower(inv.Code)+" ")
		require.NoError(t, err)
		require.True(t, v.Valid)
		require.Equal(t, "Sam", v.Name)
		require.Empty(t, v.Reason)
		require.Empty(t, v.Error)
	})

	t.Run("unknown code", func(t *testing.T) {
		v, err := ts.client.ValidateInviteCode(t.Context(), "ZZZZZZZZ")
		require.NoError(t, err)
		require.False(t, v.Valid)
		require.Empty(t, v.Name)
		require.Equal(t, "not found", v.Reason)
		require.Equal(t, "Invalid invite code. Please check and try again.", v.Error)
	})

	t.Run("malformed code", func(t *testing.T) {
		v, err := ts.client.ValidateInviteCode(t.Context(), "0OIL1")
		require.NoError(t, err)
		require.False(t, v.Valid)
		require.Equal(t, "not found", v.Reason)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := ts.client.ValidateInviteCode(t.Context(), "  ")
		require.ErrorIs(t, err, vouchsdk.ErrInvalidRequest)
	})

	t.Run("garbage body", func(t *testing.T) {
		resp, err := http.Post(ts.client.BaseURL+"/v1/invites/validate", "application/json",
			bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	})
}

func TestValidateIsRateLimitedByIP(t *testing.T) {
	ts := newTestServer(t)

	var lastErr error
	for range 50 {
		_, lastErr = ts.client.ValidateInviteCode(t.Context(), "ABCDEFGH")
		if lastErr != nil {
			break
		}
	}
	require.ErrorIs(t, lastErr, vouchsdk.ErrRateLimitExceeded)
}
