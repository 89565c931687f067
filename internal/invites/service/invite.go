package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/pkg/idx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
)

const (
	DefaultInviteWindow = 24 * time.Hour
	DefaultMaxAttempts  = 3
)

// Validation reasons. Nothing beyond these is revealed about a code.
const (
	ReasonNotFound = "not found"
	ReasonUsed     = "used"
	ReasonRevoked  = "revoked"
)

// InviteService issues, lists, revokes and validates invite codes.
type InviteService struct {
	Store   store.Store
	Metrics *Metrics

	// Window is how long an inviter waits between invites. Zero means 24h.
	Window time.Duration

	// MaxAttempts bounds code generation retries on collision. Zero means 3.
	MaxAttempts int

	// Now and NewCode are swapped out in tests.
	Now     func() time.Time
	NewCode func() (string, error)
}

// InviteList is an inviter's invites split the way they are shown: still
// redeemable, and everything else. Both are newest first.
type InviteList struct {
	Active []domain.Invite
	Past   []domain.Invite
}

// Validation is the public answer for a code. InviteeName is only set when
// Valid is true, Reason only when it is false.
type Validation struct {
	Valid       bool
	InviteeName string
	Reason      string
}

// Message is a user-facing explanation for an invalid code.
func (v Validation) Message() string {
	switch v.Reason {
	case ReasonUsed:
		return "This invite code has already been used."
	case ReasonRevoked:
		return "This invite code has been revoked."
	case "":
		return ""
	default:
		return "Invalid invite code. Please check and try again."
	}
}

// CreateInvite issues a new invite for inviterID. An inviter may hold at
// most one non-revoked invite created within the window.
func (s *InviteService) CreateInvite(ctx context.Context, inviterID, inviteeName string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	inviteeName = strings.TrimSpace(inviteeName)
	if inviteeName == "" {
		return domain.Invite{}, invalid("name", "Invite name is required")
	}
	if inviterID == "" {
		return domain.Invite{}, invalid("inviter", "Inviter is required")
	}

	// 2. Enforce the per-inviter window. Two concurrent requests can both
	// pass this check; that is tolerated.
	now := s.now()
	recent, err := s.Store.Invites().HasRecentInvite(ctx, inviterID, now.Add(-s.window()))
	if err != nil {
		log.Error("failed to check recent invites", slog.Any("error", err))
		return domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if recent {
		s.Metrics.incRateLimited()
		log.Info("invite creation rate limited", slog.String("inviter_id", inviterID))
		return domain.Invite{}, ErrRateLimited
	}

	// 3. Draw codes until one is unique
	attempts := s.maxAttempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			log.Error("failed to generate invite code", slog.Any("error", err))
			return domain.Invite{}, fmt.Errorf("generate invite code: %w", err)
		}

		inv := domain.Invite{
			ID:          idx.NewAt(now).String(),
			Code:        code,
			InviterID:   inviterID,
			InviteeName: inviteeName,
			CreatedAt:   now,
		}

		err = s.Store.Invites().CreateInvite(ctx, inv)
		switch {
		case err == nil:
			s.Metrics.incCreated()
			log.Info("invite created",
				slog.String("invite_id", inv.ID),
				slog.String("inviter_id", inviterID),
				slog.Int("attempt", attempt),
			)
			return inv, nil

		case errors.Is(err, store.ErrAlreadyExists):
			s.Metrics.incCollision()
			log.Warn("invite code collision, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts),
			)

		default:
			log.Error("failed to create invite", slog.Any("error", err))
			return domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	log.Error("invite code generation exhausted", slog.Int("attempts", attempts))
	return domain.Invite{}, ErrGenerationExhausted
}

// RevokeInvite revokes an active invite owned by inviterID. Invites owned by
// someone else are reported as not found and left untouched.
func (s *InviteService) RevokeInvite(ctx context.Context, inviterID, inviteID string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	inviteID = strings.TrimSpace(inviteID)
	if inviteID == "" {
		return domain.Invite{}, invalid("inviteId", "Invite ID is required")
	}
	id, err := idx.Parse(inviteID)
	if err != nil {
		return domain.Invite{}, ErrInviteNotFound
	}

	// 2. Load and check ownership before touching anything
	inv, err := s.Store.Invites().GetInviteByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if inv.InviterID != inviterID {
		log.Warn("revoke attempted on invite owned by another user",
			slog.String("invite_id", inv.ID),
		)
		return domain.Invite{}, ErrInviteNotFound
	}

	// 3. Terminal invites stay as they are
	if !inv.Active() {
		log.Info("revoke attempted on inactive invite",
			slog.String("invite_id", inv.ID),
			slog.String("state", string(inv.State())),
		)
		return domain.Invite{}, ErrInviteNotActive
	}

	// 4. Conditional update; losing a race against a redemption lands here too
	updated, err := s.Store.Invites().RevokeInvite(ctx, inv.ID, inviterID, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotActive
		}
		log.Error("failed to revoke invite", slog.Any("error", err))
		return domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.Metrics.incRevoked()
	log.Info("invite revoked", slog.String("invite_id", updated.ID))
	return updated, nil
}

// ListInvites returns every invite created by inviterID.
func (s *InviteService) ListInvites(ctx context.Context, inviterID string) (InviteList, error) {
	invites, err := s.Store.Invites().ListInvitesByInviter(ctx, inviterID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invites", slog.Any("error", err))
		return InviteList{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	list := InviteList{Active: []domain.Invite{}, Past: []domain.Invite{}}
	for _, inv := range invites {
		if inv.Active() {
			list.Active = append(list.Active, inv)
		} else {
			list.Past = append(list.Past, inv)
		}
	}
	return list, nil
}

// ValidateInviteCode reports whether raw is a redeemable code. It is safe to
// expose without authentication: a valid code reveals only the name the
// inviter gave it.
func (s *InviteService) ValidateInviteCode(ctx context.Context, raw string) (Validation, error) {
	code := NormalizeCode(raw)
	if code == "" {
		return Validation{}, invalid("code", "Invite code is required")
	}

	v, _, err := findInvite(ctx, s.Store.Invites(), code)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to look up invite code", slog.Any("error", err))
		return Validation{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	outcome := "valid"
	if !v.Valid {
		outcome = v.Reason
	}
	s.Metrics.observeValidation(outcome)
	return v, nil
}

// findInvite classifies a normalized code. Malformed codes never reach the store.
func findInvite(ctx context.Context, invites store.Invites, code string) (Validation, domain.Invite, error) {
	if !IsValidCodeFormat(code) {
		return Validation{Reason: ReasonNotFound}, domain.Invite{}, nil
	}

	inv, err := invites.GetInviteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Validation{Reason: ReasonNotFound}, domain.Invite{}, nil
		}
		return Validation{}, domain.Invite{}, err
	}

	switch inv.State() {
	case domain.InviteUsed:
		return Validation{Reason: ReasonUsed}, inv, nil
	case domain.InviteRevoked:
		return Validation{Reason: ReasonRevoked}, inv, nil
	default:
		return Validation{Valid: true, InviteeName: inv.InviteeName}, inv, nil
	}
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return defaultNow()
}

// defaultNow is truncated to microseconds, the finest precision every driver keeps.
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *InviteService) window() time.Duration {
	if s.Window > 0 {
		return s.Window
	}
	return DefaultInviteWindow
}

func (s *InviteService) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (s *InviteService) newCode() (string, error) {
	if s.NewCode != nil {
		return s.NewCode()
	}
	return GenerateInviteCode()
}
