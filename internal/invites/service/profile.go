package service

import (
	"context"
	"crypto/subtle"
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

// ProfileService answers "has this account finished onboarding".
type ProfileService struct {
	Store store.Store
}

// GetProfile returns the profile for an identity provider user.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch profile", slog.Any("error", err))
		return domain.Profile{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return p, nil
}

// BootstrapService creates the founding member. Every other member joins
// through an invite, so without this the network could never start.
type BootstrapService struct {
	Store store.Store
	Token string // empty disables bootstrapping
	Now   func() time.Time
}

// IsBootstrapped reports whether any profile exists yet.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Profiles().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return !empty, nil
}

// Bootstrap creates a profile with no inviter for userID, once, when the
// pre-shared token matches.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, userID, displayName string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	// 1. Check the token
	if s.Token == "" {
		return domain.Profile{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("unauthorized bootstrap attempt")
		return domain.Profile{}, ErrBootstrapUnauthorized
	}

	// 2. Validate input
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.Profile{}, invalid("displayName", "Display name is required")
	}
	if userID == "" {
		return domain.Profile{}, invalid("user", "User is required")
	}

	now := defaultNow()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	profile := domain.Profile{
		ID:                idx.New().String(),
		UserID:            userID,
		DisplayName:       displayName,
		ContactVisibility: domain.ContactHidden,
		CreatedAt:         now,
	}

	// 3. Only ever on an empty network
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Profiles().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if !empty {
			return ErrBootstrapAlready
		}
		if err := tx.Profiles().CreateProfile(ctx, profile); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			log.Warn("attempted bootstrap on already-bootstrapped system")
		} else {
			log.Error("bootstrap failed", slog.Any("error", err))
		}
		return domain.Profile{}, err
	}

	log.Info("founding member created", slog.String("profile_id", profile.ID))
	return profile, nil
}
