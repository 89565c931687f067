//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/internal/invites/store/drivers/postgres"
	"github.com/aussiebroadwan/vouch/internal/invites/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "vouch"
	pgPassword = "vouch"
)

// setupPostgres starts one postgres container for the whole test and
// returns its admin DSN for the given database.
func setupPostgres(t *testing.T) func(db string) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "vouch",
		},
		// The server restarts once after init; wait for the second ready line.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return func(db string) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port.Port(), db)
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := setupPostgres(t)

	admin, err := sql.Open("postgres", dsn("vouch"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	// Each subtest gets a fresh database.
	var n int
	storetest.Run(t, func(t *testing.T) store.Store {
		n++
		name := fmt.Sprintf("vouch_%d", n)
		_, err := admin.ExecContext(context.Background(), "CREATE DATABASE "+name)
		require.NoError(t, err)

		s, err := postgres.NewStore(dsn(name))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		require.NoError(t, s.ApplyMigrations())
		return s
	})
}

func TestPostgresMigrationsAreIdempotent(t *testing.T) {
	dsn := setupPostgres(t)

	s, err := postgres.NewStore(dsn("vouch"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}
