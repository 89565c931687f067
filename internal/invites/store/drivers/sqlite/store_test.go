package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/internal/invites/store/drivers/sqlite"
	"github.com/aussiebroadwan/vouch/internal/invites/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vouch.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Invites().CreateInvite(context.Background(),
		storetest.NewInvite("user-a", "FILE2222", time.Now().UTC())))
	require.NoError(t, s.Close())

	// Reopening keeps the data and finds nothing to migrate.
	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))

	_, err = s.Invites().GetInviteByCode(context.Background(), "FILE2222")
	require.NoError(t, err)
}

func TestSQLiteNestedTxUnsupported(t *testing.T) {
	s := newMemoryStore(t)
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		_, err := tx.Tx(context.Background())
		require.Error(t, err)
		return nil
	})
	require.NoError(t, err)
}
