package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/internal/invites/store/drivers/sqlite"
	"github.com/aussiebroadwan/vouch/pkg/idx"
	"github.com/stretchr/testify/require"
)

const (
	userA = "8d1f5a0e-7c41-4b6a-9a55-3c2b1e0f9d01"
	userB = "2e6a9c14-0f3b-4d8e-b7a1-5f4c3d2e1b02"
	userC = "c3b2a190-8e7d-4f6c-a5b4-9e8d7c6b5a03"
)

var t0 = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

// clock is a settable time source.
type clock struct{ now time.Time }

func newClock(at time.Time) *clock { return &clock{now: at} }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// codes returns a NewCode func yielding the given codes in order and counts calls.
func codes(list ...string) (func() (string, error), *int) {
	calls := 0
	return func() (string, error) {
		c := list[calls%len(list)]
		calls++
		return c, nil
	}, &calls
}

// hookedStore lets tests intercept invite repository calls, in and out of
// transactions.
type hookedStore struct {
	store.Store
	hooks *inviteHooks
}

func (s *hookedStore) Invites() store.Invites {
	return &hookedInvites{Invites: s.Store.Invites(), hooks: s.hooks}
}

func (s *hookedStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&hookedTx{txStore: tx, hooks: s.hooks})
	})
}

// txStore aliases store.Tx so the embedded field is not named Tx, which
// would shadow the promoted Tx method.
type txStore = store.Tx

type hookedTx struct {
	txStore
	hooks *inviteHooks
}

func (t *hookedTx) Invites() store.Invites {
	return &hookedInvites{Invites: t.txStore.Invites(), hooks: t.hooks}
}

type inviteHooks struct {
	createInvite    func(next store.Invites, ctx context.Context, inv domain.Invite) error
	getInviteByCode func(next store.Invites, ctx context.Context, code string) (domain.Invite, error)
	markInviteUsed  func(next store.Invites, ctx context.Context, id, usedBy string, at time.Time) (domain.Invite, error)
}

type hookedInvites struct {
	store.Invites
	hooks *inviteHooks
}

func (r *hookedInvites) CreateInvite(ctx context.Context, inv domain.Invite) error {
	if r.hooks.createInvite != nil {
		return r.hooks.createInvite(r.Invites, ctx, inv)
	}
	return r.Invites.CreateInvite(ctx, inv)
}

func (r *hookedInvites) GetInviteByCode(ctx context.Context, code string) (domain.Invite, error) {
	if r.hooks.getInviteByCode != nil {
		return r.hooks.getInviteByCode(r.Invites, ctx, code)
	}
	return r.Invites.GetInviteByCode(ctx, code)
}

func (r *hookedInvites) MarkInviteUsed(ctx context.Context, id, usedBy string, at time.Time) (domain.Invite, error) {
	if r.hooks.markInviteUsed != nil {
		return r.hooks.markInviteUsed(r.Invites, ctx, id, usedBy, at)
	}
	return r.Invites.MarkInviteUsed(ctx, id, usedBy, at)
}

// seedProfile gives userID a profile, as if they had already onboarded.
func seedProfile(t *testing.T, s store.Store, userID string) {
	t.Helper()
	require.NoError(t, s.Profiles().CreateProfile(context.Background(), domain.Profile{
		ID:                idx.New().String(),
		UserID:            userID,
		DisplayName:       "Member",
		ContactVisibility: domain.ContactHidden,
		CreatedAt:         t0,
	}))
}
