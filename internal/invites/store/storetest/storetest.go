// Package storetest is a conformance suite every store driver runs from its
// own tests.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. The suite does not close it.
type Factory func(t *testing.T) store.Store

// base is microsecond aligned: postgres keeps no more than that.
var base = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAndGetInvite", func(t *testing.T) { testCreateAndGetInvite(t, newStore(t)) })
	t.Run("DuplicateCode", func(t *testing.T) { testDuplicateCode(t, newStore(t)) })
	t.Run("HasRecentInvite", func(t *testing.T) { testHasRecentInvite(t, newStore(t)) })
	t.Run("ListInvitesByInviter", func(t *testing.T) { testListInvites(t, newStore(t)) })
	t.Run("RevokeInvite", func(t *testing.T) { testRevokeInvite(t, newStore(t)) })
	t.Run("MarkInviteUsed", func(t *testing.T) { testMarkInviteUsed(t, newStore(t)) })
	t.Run("WithTxRollback", func(t *testing.T) { testWithTxRollback(t, newStore(t)) })
	t.Run("Profiles", func(t *testing.T) { testProfiles(t, newStore(t)) })
	t.Run("ConcurrentRedeem", func(t *testing.T) { testConcurrentRedeem(t, newStore(t)) })
}

// NewInvite builds an active invite for inviterID created at the given time.
func NewInvite(inviterID, code string, createdAt time.Time) domain.Invite {
	return domain.Invite{
		ID:          idx.NewAt(createdAt).String(),
		Code:        code,
		InviterID:   inviterID,
		InviteeName: "Sam from the climbing gym",
		CreatedAt:   createdAt,
	}
}

func testCreateAndGetInvite(t *testing.T, s store.Store) {
	ctx := context.Background()
	inv := NewInvite("user-a", "ABCD2345", base)
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	got, err := s.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Code, got.Code)
	require.Equal(t, inv.InviterID, got.InviterID)
	require.Equal(t, inv.InviteeName, got.InviteeName)
	require.True(t, inv.CreatedAt.Equal(got.CreatedAt))
	require.Nil(t, got.UsedAt)
	require.Nil(t, got.UsedBy)
	require.Nil(t, got.RevokedAt)
	require.True(t, got.Active())

	byCode, err := s.Invites().GetInviteByCode(ctx, "ABCD2345")
	require.NoError(t, err)
	require.Equal(t, inv.ID, byCode.ID)

	_, err = s.Invites().GetInviteByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Invites().GetInviteByCode(ctx, "abcd2345")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDuplicateCode(t *testing.T, s store.Store) {
	ctx := context.Background()
	require.NoError(t, s.Invites().CreateInvite(ctx, NewInvite("user-a", "ZZZZ2222", base)))

	err := s.Invites().CreateInvite(ctx, NewInvite("user-b", "ZZZZ2222", base.Add(time.Second)))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	list, err := s.Invites().ListInvitesByInviter(ctx, "user-b")
	require.NoError(t, err)
	require.Empty(t, list)
}

func testHasRecentInvite(t *testing.T, s store.Store) {
	ctx := context.Background()
	inv := s.Invites()

	recent := NewInvite("user-a", "RECENT22", base.Add(-10*time.Hour))
	require.NoError(t, inv.CreateInvite(ctx, recent))

	ok, err := inv.HasRecentInvite(ctx, "user-a", base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.True(t, ok)

	// The window start is inclusive.
	ok, err = inv.HasRecentInvite(ctx, "user-a", recent.CreatedAt)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = inv.HasRecentInvite(ctx, "user-a", recent.CreatedAt.Add(time.Microsecond))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = inv.HasRecentInvite(ctx, "user-b", base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.False(t, ok)

	// Revoked invites do not count, used ones do.
	_, err = inv.RevokeInvite(ctx, recent.ID, "user-a", base)
	require.NoError(t, err)
	ok, err = inv.HasRecentInvite(ctx, "user-a", base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.False(t, ok)

	used := NewInvite("user-a", "USED2222", base.Add(-time.Hour))
	require.NoError(t, inv.CreateInvite(ctx, used))
	_, err = inv.MarkInviteUsed(ctx, used.ID, "user-c", base)
	require.NoError(t, err)
	ok, err = inv.HasRecentInvite(ctx, "user-a", base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.True(t, ok)
}

func testListInvites(t *testing.T, s store.Store) {
	ctx := context.Background()
	for i, code := range []string{"LIST2222", "LIST3333", "LIST4444"} {
		at := base.Add(time.Duration(i) * 48 * time.Hour)
		require.NoError(t, s.Invites().CreateInvite(ctx, NewInvite("user-a", code, at)))
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, NewInvite("user-b", "LIST5555", base)))

	list, err := s.Invites().ListInvitesByInviter(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "LIST4444", list[0].Code)
	require.Equal(t, "LIST3333", list[1].Code)
	require.Equal(t, "LIST2222", list[2].Code)

	list, err = s.Invites().ListInvitesByInviter(ctx, "user-z")
	require.NoError(t, err)
	require.Empty(t, list)
}

func testRevokeInvite(t *testing.T, s store.Store) {
	ctx := context.Background()
	inv := NewInvite("user-a", "REVK2222", base)
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	// Someone else's invite is invisible to the update.
	_, err := s.Invites().RevokeInvite(ctx, inv.ID, "user-b", base.Add(time.Minute))
	require.ErrorIs(t, err, store.ErrNotFound)
	got, err := s.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, got.Active())

	revokedAt := base.Add(2 * time.Minute)
	got, err = s.Invites().RevokeInvite(ctx, inv.ID, "user-a", revokedAt)
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt)
	require.True(t, revokedAt.Equal(*got.RevokedAt))
	require.Equal(t, domain.InviteRevoked, got.State())

	// Revocation is permanent.
	_, err = s.Invites().RevokeInvite(ctx, inv.ID, "user-a", base.Add(time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Invites().MarkInviteUsed(ctx, inv.ID, "user-c", base.Add(time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err = s.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.True(t, revokedAt.Equal(*got.RevokedAt))
	require.Nil(t, got.UsedAt)
}

func testMarkInviteUsed(t *testing.T, s store.Store) {
	ctx := context.Background()
	inv := NewInvite("user-a", "USED3333", base)
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	usedAt := base.Add(time.Hour)
	got, err := s.Invites().MarkInviteUsed(ctx, inv.ID, "user-b", usedAt)
	require.NoError(t, err)
	require.Equal(t, domain.InviteUsed, got.State())
	require.NotNil(t, got.UsedBy)
	require.Equal(t, "user-b", *got.UsedBy)
	require.True(t, usedAt.Equal(*got.UsedAt))

	_, err = s.Invites().MarkInviteUsed(ctx, inv.ID, "user-c", base.Add(2*time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Invites().RevokeInvite(ctx, inv.ID, "user-a", base.Add(2*time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err = s.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "user-b", *got.UsedBy)
	require.Nil(t, got.RevokedAt)
}

func testWithTxRollback(t *testing.T, s store.Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Invites().CreateInvite(ctx, NewInvite("user-a", "ROLL2222", base)))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Invites().GetInviteByCode(ctx, "ROLL2222")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invites().CreateInvite(ctx, NewInvite("user-a", "KEEP2222", base))
	})
	require.NoError(t, err)

	_, err = s.Invites().GetInviteByCode(ctx, "KEEP2222")
	require.NoError(t, err)
}

func testProfiles(t *testing.T, s store.Store) {
	ctx := context.Background()

	empty, err := s.Profiles().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	_, err = s.Profiles().GetProfileByUserID(ctx, "user-b")
	require.ErrorIs(t, err, store.ErrNotFound)

	p := domain.Profile{
		ID:                idx.New().String(),
		UserID:            "user-b",
		DisplayName:       "Sam",
		About:             "Climbs on weekends.",
		ContactVisibility: domain.ContactConnectionsOnly,
		InvitedBy:         "user-a",
		CreatedAt:         base,
	}
	require.NoError(t, s.Profiles().CreateProfile(ctx, p))

	got, err := s.Profiles().GetProfileByUserID(ctx, "user-b")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.DisplayName, got.DisplayName)
	require.Equal(t, p.About, got.About)
	require.Equal(t, domain.ContactConnectionsOnly, got.ContactVisibility)
	require.Equal(t, "user-a", got.InvitedBy)
	require.True(t, base.Equal(got.CreatedAt))

	dup := p
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Profiles().CreateProfile(ctx, dup), store.ErrAlreadyExists)

	founder := domain.Profile{
		ID:                idx.New().String(),
		UserID:            "user-a",
		DisplayName:       "Founder",
		ContactVisibility: domain.ContactHidden,
		CreatedAt:         base,
	}
	require.NoError(t, s.Profiles().CreateProfile(ctx, founder))
	got, err = s.Profiles().GetProfileByUserID(ctx, "user-a")
	require.NoError(t, err)
	require.Empty(t, got.InvitedBy)

	empty, err = s.Profiles().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

// testConcurrentRedeem races redemptions of one code, each inside a
// transaction that also creates the redeemer's profile.
func testConcurrentRedeem(t *testing.T, s store.Store) {
	ctx := context.Background()
	inv := NewInvite("user-a", "RACE2222", base)
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	const racers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  []error
	)
	for i := range racers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := "racer-" + string(rune('a'+i))
			err := s.WithTx(ctx, func(tx store.Tx) error {
				if _, err := tx.Invites().MarkInviteUsed(ctx, inv.ID, userID, base.Add(time.Minute)); err != nil {
					return err
				}
				return tx.Profiles().CreateProfile(ctx, domain.Profile{
					ID:                idx.New().String(),
					UserID:            userID,
					DisplayName:       userID,
					ContactVisibility: domain.ContactHidden,
					InvitedBy:         inv.InviterID,
					CreatedAt:         base.Add(time.Minute),
				})
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				losers = append(losers, err)
				return
			}
			winners = append(winners, userID)
		}(i)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	require.Len(t, losers, racers-1)
	for _, err := range losers {
		require.ErrorIs(t, err, store.ErrNotFound)
	}

	got, err := s.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, winners[0], *got.UsedBy)

	// Losers left nothing behind.
	for i := range racers {
		userID := "racer-" + string(rune('a'+i))
		_, err := s.Profiles().GetProfileByUserID(ctx, userID)
		if userID == winners[0] {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, store.ErrNotFound)
		}
	}
}
