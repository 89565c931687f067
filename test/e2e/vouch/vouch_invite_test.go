//go:build e2e

package vouch_test

import (
	"testing"

	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteLifecycle walks a code from issuance through redemption, then
// checks that the spent code and the new member behave as expected.
func TestInviteLifecycle(t *testing.T) {
	client := vouchsdk.NewClient(setupVouchContainer(t, relaxedRateLimits))
	founder := bootstrapFounder(t, client)

	inv, err := founder.CreateInvite(t.Context(), "Sam from the climbing gym")
	require.NoError(t, err)
	require.Len(t, inv.Code, 8)

	v, err := client.ValidateInviteCode(t.Context(), inv.Code)
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, "Sam from the climbing gym", v.Name)

	const samID = "2e6a9c14-0f3b-4d8e-b7a1-5f4c3d2e1b02"
	sam := client.WithToken(accessToken(t, samID))

	// No profile yet, so no invite management
	_, err = sam.CreateInvite(t.Context(), "Alex")
	require.ErrorIs(t, err, vouchsdk.ErrProfileRequired)

	res, err := sam.CompleteSignup(t.Context(), vouchsdk.CompleteSignupRequest{
		InviteCode:  inv.Code,
		DisplayName: "Sam",
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	profile, err := sam.GetProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, founderID, profile.InvitedBy)

	v, err = client.ValidateInviteCode(t.Context(), inv.Code)
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.Equal(t, "used", v.Reason)

	list, err := founder.ListInvites(t.Context())
	require.NoError(t, err)
	require.Empty(t, list.Active)
	require.Len(t, list.Past, 1)

	// The new member can now vouch for someone else
	next, err := sam.CreateInvite(t.Context(), "Alex")
	require.NoError(t, err)

	revoked, err := sam.RevokeInvite(t.Context(), next.ID)
	require.NoError(t, err)
	require.NotNil(t, revoked.RevokedAt)

	_, err = founder.CreateInvite(t.Context(), "Another")
	require.ErrorIs(t, err, vouchsdk.ErrInviteRateLimited)
}

// TestBootstrapOnlyOnce checks a second founding member is refused.
func TestBootstrapOnlyOnce(t *testing.T) {
	client := vouchsdk.NewClient(setupVouchContainer(t, relaxedRateLimits))
	bootstrapFounder(t, client)

	_, err := client.WithToken(accessToken(t, "c3b2a190-8e7d-4f6c-a5b4-9e8d7c6b5a03")).
		Bootstrap(t.Context(), bootstrapToken, "Usurper")
	require.ErrorIs(t, err, vouchsdk.ErrAlreadyBootstrapped)
}
