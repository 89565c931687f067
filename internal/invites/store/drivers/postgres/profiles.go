package postgres

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
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.DisplayName, p.About, string(p.ContactVisibility),
		mapStringNull(p.InvitedBy), p.CreatedAt.UTC(),
	)
	if isUniqueViolation(err, constraintProfileUser) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	var (
		p          domain.Profile
		visibility string
		invitedBy  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, display_name, about, contact_visibility, invited_by, created_at
		FROM profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.About, &visibility, &invitedBy, &p.CreatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.ContactVisibility = domain.ContactVisibility(visibility)
	p.InvitedBy = invitedBy.String
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *profilesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM profiles)`).Scan(&exists)
	return !exists, err
}
