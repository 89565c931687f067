package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	svc := &ProfileService{Store: s}

	_, err := svc.GetProfile(ctx, userA)
	require.ErrorIs(t, err, ErrProfileNotFound)

	seedProfile(t, s, userA)
	p, err := svc.GetProfile(ctx, userA)
	require.NoError(t, err)
	require.Equal(t, userA, p.UserID)
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("disabled without a token", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t)}
		_, err := svc.Bootstrap(ctx, "", userA, "Founder")
		require.ErrorIs(t, err, ErrBootstrapDisabled)
	})

	t.Run("wrong token", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "let-me-in"}
		_, err := svc.Bootstrap(ctx, "let-me-out", userA, "Founder")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates the founding member once", func(t *testing.T) {
		s := newTestStore(t)
		svc := &BootstrapService{Store: s, Token: "let-me-in"}

		done, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.False(t, done)

		p, err := svc.Bootstrap(ctx, "let-me-in", userA, "  Founder ")
		require.NoError(t, err)
		require.Equal(t, "Founder", p.DisplayName)
		require.Empty(t, p.InvitedBy)
		require.Equal(t, domain.ContactHidden, p.ContactVisibility)

		done, err = svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, done)

		_, err = svc.Bootstrap(ctx, "let-me-in", userB, "Second")
		require.ErrorIs(t, err, ErrBootstrapAlready)

		// The founder can invite straight away.
		_, err = newInviteService(t, s, newClock(t0)).CreateInvite(ctx, userA, "First guest")
		require.NoError(t, err)
	})

	t.Run("requires a display name", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "let-me-in"}
		_, err := svc.Bootstrap(ctx, "let-me-in", userA, " ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
