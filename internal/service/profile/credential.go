package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// SetCredential stores the user's API key, encrypted, replacing any previous
// one. A nil key removes the stored credential instead.
func (s *Service) SetCredential(ctx context.Context, platform domain.Platform, platformUserID string, key *string) error {
	userID, err := s.identify(ctx, platform, platformUserID)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}

	if key == nil {
		if err := s.credentials.Delete(ctx, userID); err != nil {
			return fmt.Errorf("set credential: %w", err)
		}
		return nil
	}

	trimmed := strings.TrimSpace(*key)
	if trimmed == "" {
		return fmt.Errorf("set credential: empty key: %w", domain.ErrValidation)
	}

	ciphertext, err := s.cipher.Encrypt(trimmed)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}

	if err := s.credentials.Upsert(ctx, userID, ciphertext); err != nil {
		return fmt.Errorf("set credential: %w", err)
	}

	return nil
}

// GetCredential returns the user's API key in plaintext. A missing credential
// and an undecryptable one both come back as domain.ErrNoCredential; the
// caller cannot use a key it cannot read, so the distinction is log-only.
func (s *Service) GetCredential(ctx context.Context, platform domain.Platform, platformUserID string) (string, error) {
	userID, err := s.identify(ctx, platform, platformUserID)
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}

	cred, err := s.credentials.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNoCredential
		}
		return "", fmt.Errorf("get credential: %w", err)
	}

	plaintext, err := s.cipher.Decrypt(cred.Ciphertext)
	if err != nil {
		s.log.Warn("stored credential failed to decrypt",
			"platform", platform,
			"platform_user_id", platformUserID,
			"error", err,
		)
		return "", domain.ErrNoCredential
	}

	return plaintext, nil
}

// HasCredential reports whether the user has a usable credential.
func (s *Service) HasCredential(ctx context.Context, platform domain.Platform, platformUserID string) (bool, error) {
	_, err := s.GetCredential(ctx, platform, platformUserID)
	if errors.Is(err, domain.ErrNoCredential) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
