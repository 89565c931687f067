package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
)

const inviteColumns = `id, code, inviter_id, invitee_name, created_at, used_at, used_by, revoked_at`

type invitesRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv       domain.Invite
		usedAt    sql.NullTime
		usedBy    sql.NullString
		revokedAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.Code, &inv.InviterID, &inv.InviteeName,
		&inv.CreatedAt, &usedAt, &usedBy, &revokedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UsedAt = mapNullTimePtr(usedAt)
	inv.UsedBy = mapNullStringPtr(usedBy)
	inv.RevokedAt = mapNullTimePtr(revokedAt)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, code, inviter_id, invitee_name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.Code, inv.InviterID, inv.InviteeName, inv.CreatedAt.UTC(),
	)
	if isUniqueViolation(err, constraintInviteCode) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = $1`, id)
	return scanInvite(row)
}

func (r *invitesRepo) GetInviteByCode(ctx context.Context, code string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE code = $1`, code)
	return scanInvite(row)
}

func (r *invitesRepo) HasRecentInvite(ctx context.Context, inviterID string, since time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invites
			WHERE inviter_id = $1 AND revoked_at IS NULL AND created_at >= $2
		)`, inviterID, since.UTC(),
	).Scan(&exists)
	return exists, err
}

func (r *invitesRepo) ListInvitesByInviter(ctx context.Context, inviterID string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE inviter_id = $1 ORDER BY created_at DESC, id DESC`,
		inviterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) RevokeInvite(ctx context.Context, id, inviterID string, at time.Time) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE invites SET revoked_at = $1
		WHERE id = $2 AND inviter_id = $3 AND used_at IS NULL AND revoked_at IS NULL
		RETURNING `+inviteColumns,
		at.UTC(), id, inviterID)
	return scanInvite(row)
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, id, usedBy string, at time.Time) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE invites SET used_at = $1, used_by = $2
		WHERE id = $3 AND used_at IS NULL AND revoked_at IS NULL
		RETURNING `+inviteColumns,
		at.UTC(), usedBy, id)
	return scanInvite(row)
}
