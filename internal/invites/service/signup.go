package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/vouch/internal/invites/domain"
	"github.com/aussiebroadwan/vouch/internal/invites/store"
	"github.com/aussiebroadwan/vouch/pkg/idx"
	"github.com/aussiebroadwan/vouch/pkg/slogx"
)

const (
	MaxDisplayNameLength = 100
	MaxAboutLength       = 500
)

// errRedeemRejected rolls back a signup whose code turned out not to be
// redeemable. It never leaves this package.
var errRedeemRejected = errors.New("invite not redeemable")

// SignupService completes onboarding for a freshly authenticated account.
type SignupService struct {
	Store   store.Store
	Metrics *Metrics
	Now     func() time.Time
}

type SignupRequest struct {
	InviteCode        string
	DisplayName       string
	About             string
	ContactVisibility domain.ContactVisibility
}

// SignupResult mirrors what the client is told. A code that is not
// redeemable is a normal outcome, not an error: Success is false and Reason
// says why.
type SignupResult struct {
	Success bool
	Reason  string
	Profile domain.Profile
}

// Message is the user-facing explanation for an unsuccessful signup.
func (r SignupResult) Message() string {
	return Validation{Reason: r.Reason}.Message()
}

// CompleteSignup redeems the invite and creates the caller's profile in one
// transaction. Either both happen or neither does.
func (s *SignupService) CompleteSignup(ctx context.Context, userID string, req SignupRequest) (SignupResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	req, err := normalizeSignup(req)
	if err != nil {
		return SignupResult{}, err
	}
	if userID == "" {
		return SignupResult{}, invalid("user", "User is required")
	}

	var result SignupResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. One profile per account
		_, err := tx.Profiles().GetProfileByUserID(ctx, userID)
		switch {
		case err == nil:
			return ErrProfileExists
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		// 3. Claim the invite
		v, inv, err := s.RedeemInviteCode(ctx, tx, req.InviteCode, userID)
		if err != nil {
			return err
		}
		if !v.Valid {
			result = SignupResult{Reason: v.Reason}
			return errRedeemRejected
		}

		// 4. Create the profile, linked to whoever vouched for them
		profile := domain.Profile{
			ID:                idx.New().String(),
			UserID:            userID,
			DisplayName:       req.DisplayName,
			About:             req.About,
			ContactVisibility: req.ContactVisibility,
			InvitedBy:         inv.InviterID,
			CreatedAt:         s.now(),
		}
		if err := tx.Profiles().CreateProfile(ctx, profile); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrProfileExists
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		result = SignupResult{Success: true, Profile: profile}
		return nil
	})

	switch {
	case err == nil:
		s.Metrics.incRedeemed()
		log.Info("signup completed",
			slog.String("user_id", userID),
			slog.String("profile_id", result.Profile.ID),
			slog.String("invited_by", result.Profile.InvitedBy),
		)
		return result, nil

	case errors.Is(err, errRedeemRejected):
		log.Info("signup rejected", slog.String("reason", result.Reason))
		return result, nil

	case errors.Is(err, ErrProfileExists):
		log.Warn("signup attempted by user with existing profile")
		return SignupResult{}, ErrProfileExists

	case errors.Is(err, ErrPersistence):
		log.Error("signup failed", slog.Any("error", err))
		return SignupResult{}, err

	default:
		log.Error("signup transaction failed", slog.Any("error", err))
		return SignupResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}

// RedeemInviteCode marks the invite behind code as used by userID inside
// tx. The update only matches an active invite, so of several concurrent
// redemptions exactly one gets Valid; the rest see why the code is gone.
func (s *SignupService) RedeemInviteCode(ctx context.Context, tx store.Tx, code, userID string) (Validation, domain.Invite, error) {
	code = NormalizeCode(code)

	// Re-validate inside the transaction
	v, inv, err := findInvite(ctx, tx.Invites(), code)
	if err != nil {
		return Validation{}, domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !v.Valid {
		return v, domain.Invite{}, nil
	}

	used, err := tx.Invites().MarkInviteUsed(ctx, inv.ID, userID, s.now())
	if err == nil {
		return v, used, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return Validation{}, domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Lost the race. Report the state the winner left behind.
	slogx.FromContext(ctx).Info("invite redemption lost race", slog.String("invite_id", inv.ID))
	v, _, err = findInvite(ctx, tx.Invites(), code)
	if err != nil {
		return Validation{}, domain.Invite{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if v.Valid {
		v = Validation{Reason: ReasonUsed}
	}
	return v, domain.Invite{}, nil
}

func normalizeSignup(req SignupRequest) (SignupRequest, error) {
	req.InviteCode = NormalizeCode(req.InviteCode)
	if req.InviteCode == "" {
		return req, invalid("inviteCode", "Invite code is required")
	}

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		return req, invalid("displayName", "Display name is required")
	}
	if utf8.RuneCountInString(req.DisplayName) > MaxDisplayNameLength {
		return req, invalid("displayName", "Display name must be at most 100 characters")
	}

	req.About = strings.TrimSpace(req.About)
	if utf8.RuneCountInString(req.About) > MaxAboutLength {
		return req, invalid("about", "About must be at most 500 characters")
	}

	if req.ContactVisibility == "" {
		req.ContactVisibility = domain.ContactHidden
	}
	if !req.ContactVisibility.Valid() {
		return req, invalid("contactVisibility", "Contact visibility must be hidden, connections-only or public")
	}
	return req, nil
}

func (s *SignupService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return defaultNow()
}
