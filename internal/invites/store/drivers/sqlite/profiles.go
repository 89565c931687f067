package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, display_name, about, contact_visibility, invited_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.DisplayName, p.About, string(p.ContactVisibility),
		mapStringNull(p.InvitedBy), toUnix(p.CreatedAt),
	)
	if isUniqueViolation(err, "profiles.user_id") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	var (
		p          domain.Profile
		visibility string
		invitedBy  sql.NullString
		createdAt  int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, display_name, about, contact_visibility, invited_by, created_at
		FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.About, &visibility, &invitedBy, &createdAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.ContactVisibility = domain.ContactVisibility(visibility)
	p.InvitedBy = invitedBy.String
	p.CreatedAt = fromUnix(createdAt)
	return p, nil
}

func (r *profilesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM profiles)`).Scan(&exists)
	return !exists, err
}
