package http

import (
	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/pkg/vouchsdk"
)

func toInviteResponse(inv domain.Invite) vouchsdk.Invite {
	return vouchsdk.Invite{
		ID:        inv.ID,
		Code:      inv.Code,
		InviterID: inv.InviterID,
		Name:      inv.InviteeName,
		CreatedAt: inv.CreatedAt,
		UsedAt:    inv.UsedAt,
		UsedBy:    inv.UsedBy,
		RevokedAt: inv.RevokedAt,
	}
}

func toInviteResponses(invs []domain.Invite) []vouchsdk.Invite {
	out := make([]vouchsdk.Invite, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInviteResponse(inv))
	}
	return out
}

func toProfileResponse(p domain.Profile) vouchsdk.Profile {
	return vouchsdk.Profile{
		ID:                p.ID,
		UserID:            p.UserID,
		DisplayName:       p.DisplayName,
		About:             p.About,
		ContactVisibility: string(p.ContactVisibility),
		InvitedBy:         p.InvitedBy,
		CreatedAt:         p.CreatedAt,
	}
}
