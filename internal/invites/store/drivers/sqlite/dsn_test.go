package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	require.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", buildDSN(":memory:"))
	require.Equal(t, "vouch.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", buildDSN("vouch.db"))

	// Explicit parameters are left alone.
	require.Equal(t, "vouch.db?_pragma=foreign_keys(0)", buildDSN("vouch.db?_pragma=foreign_keys(0)"))
}
