package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	codeClash := &pq.Error{Code: "23505", Constraint: constraintInviteCode}

	require.True(t, isUniqueViolation(codeClash, constraintInviteCode))
	require.True(t, isUniqueViolation(fmt.Errorf("insert: %w", codeClash), constraintInviteCode))
	require.False(t, isUniqueViolation(codeClash, constraintProfileUser))
	require.False(t, isUniqueViolation(&pq.Error{Code: "23503", Constraint: constraintInviteCode}, constraintInviteCode))
	require.False(t, isUniqueViolation(errors.New("connection reset"), constraintInviteCode))
	require.False(t, isUniqueViolation(nil, constraintInviteCode))
}
