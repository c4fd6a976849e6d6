package profile

import (
	"context"
	"fmt"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// GetAllergies returns the user's configured allergen names, sorted.
// A user with none configured yields an empty slice.
func (s *Service) GetAllergies(ctx context.Context, platform domain.Platform, platformUserID string) ([]string, error) {
	userID, err := s.identify(ctx, platform, platformUserID)
	if err != nil {
		return nil, fmt.Errorf("get allergies: %w", err)
	}

	names, err := s.allergies.GetForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get allergies: %w", err)
	}

	return names, nil
}

// ReplaceAllergies atomically replaces the user's allergy set with names.
// An empty list clears the set.
func (s *Service) ReplaceAllergies(ctx context.Context, platform domain.Platform, platformUserID string, names []string) error {
	userID, err := s.identify(ctx, platform, platformUserID)
	if err != nil {
		return fmt.Errorf("replace allergies: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.allergies.ReplaceForUser(ctx, userID, names)
	})
	if err != nil {
		return fmt.Errorf("replace allergies: %w", err)
	}

	return nil
}
