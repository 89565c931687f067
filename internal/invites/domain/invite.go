package domain

import "time"

// InviteState is derived from the nullable timestamps; it is never stored.
type InviteState string

const (
	InviteActive  InviteState = "active"
	InviteUsed    InviteState = "used"
	InviteRevoked InviteState = "revoked"
)

// Invite is a single-use code issued by a member. UsedAt/UsedBy are set
// together on redemption, RevokedAt on revocation, and at most one of the
// two ever happens.
type Invite struct {
	ID          string
	Code        string
	InviterID   string
	InviteeName string
	CreatedAt   time.Time
	UsedAt      *time.Time
	UsedBy      *string
	RevokedAt   *time.Time
}

// State reports where the invite is in its lifecycle.
func (i Invite) State() InviteState {
	switch {
	case i.UsedAt != nil:
		return InviteUsed
	case i.RevokedAt != nil:
		return InviteRevoked
	default:
		return InviteActive
	}
}

// Active is true while the code can still be redeemed or revoked.
func (i Invite) Active() bool { return i.State() == InviteActive }
