package profile

import (
	"context"
	"fmt"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// ResetProfile returns the user to a clean slate: no credential, no
// allergies. The user row itself survives. Used on follow so a re-added bot
// never carries over a previous configuration.
func (s *Service) ResetProfile(ctx context.Context, platform domain.Platform, platformUserID string) error {
	userID, err := s.identify(ctx, platform, platformUserID)
	if err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.credentials.Delete(ctx, userID); err != nil {
			return err
		}
		return s.allergies.ReplaceForUser(ctx, userID, nil)
	})
	if err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}

	return nil
}

// DeleteProfile removes the user and everything attached to them. Used on
// unfollow/block. Deleting an unknown user is a no-op.
func (s *Service) DeleteProfile(ctx context.Context, platform domain.Platform, platformUserID string) error {
	if !platform.IsValid() || platformUserID == "" {
		return fmt.Errorf("delete profile: %w", domain.ErrValidation)
	}

	if err := s.users.Delete(ctx, platform, platformUserID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	return nil
}
