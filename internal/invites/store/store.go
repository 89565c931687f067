package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and hand out sub-repositories. The repositories returned by a
// Tx run on that transaction; the ones returned by the Store do not.
type Store interface {
	Invites() Invites
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction. A non-nil error from fn rolls it back,
	// otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invites interface {
	// CreateInvite inserts a new invite. A clash on the unique code returns
	// ErrAlreadyExists so the caller can draw a fresh code.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByID returns an invite in any state.
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// GetInviteByCode returns an invite in any state by its exact code.
	GetInviteByCode(ctx context.Context, code string) (domain.Invite, error)

	// HasRecentInvite reports whether inviterID created a non-revoked invite
	// at or after since. Used invites count.
	HasRecentInvite(ctx context.Context, inviterID string, since time.Time) (bool, error)

	// ListInvitesByInviter returns every invite created by inviterID, newest first.
	ListInvitesByInviter(ctx context.Context, inviterID string) ([]domain.Invite, error)

	// RevokeInvite sets revoked_at on an active invite owned by inviterID.
	// ErrNotFound when no such active invite exists.
	RevokeInvite(ctx context.Context, id, inviterID string, at time.Time) (domain.Invite, error)

	// MarkInviteUsed sets used_at/used_by on an active invite. ErrNotFound
	// when the invite was used or revoked in the meantime, which is how a
	// lost redemption race surfaces.
	MarkInviteUsed(ctx context.Context, id, usedBy string, at time.Time) (domain.Invite, error)
}

type Profiles interface {
	// CreateProfile inserts a profile. ErrAlreadyExists if the user has one.
	CreateProfile(ctx context.Context, p domain.Profile) error

	// GetProfileByUserID returns the profile of an identity provider user.
	GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// IsEmpty returns true if there are no profiles at all.
	IsEmpty(ctx context.Context) (bool, error)
}
