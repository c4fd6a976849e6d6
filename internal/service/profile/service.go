// Package profile manages per-user allergy sets and encrypted API
// credentials, keyed by the (platform, platform user id) pair.
package profile

import (
	"context"
	"log/slog"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the profile service.
type userRepo interface {
	GetOrCreate(ctx context.Context, platform domain.Platform, platformUserID string) (int64, error)
	Delete(ctx context.Context, platform domain.Platform, platformUserID string) error
}

// allergyRepo defines the allergy repository interface needed by the profile service.
type allergyRepo interface {
	GetForUser(ctx context.Context, userID int64) ([]string, error)
	ReplaceForUser(ctx context.Context, userID int64, names []string) error
}

// credentialRepo defines the credential repository interface needed by the profile service.
type credentialRepo interface {
	Get(ctx context.Context, userID int64) (*domain.Credential, error)
	Upsert(ctx context.Context, userID int64, ciphertext string) error
	Delete(ctx context.Context, userID int64) error
}

// cipher seals and opens credential plaintext. Only ciphertext reaches the store.
type cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// txManager defines the transaction manager interface needed by the profile service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile operations: allergy management, credential
// management, and the follow/unfollow lifecycle.
type Service struct {
	log         *slog.Logger
	users       userRepo
	allergies   allergyRepo
	credentials credentialRepo
	cipher      cipher
	tx          txManager
}

// NewService creates a new profile service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	allergies allergyRepo,
	credentials credentialRepo,
	cipher cipher,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "profile"),
		users:       users,
		allergies:   allergies,
		credentials: credentials,
		cipher:      cipher,
		tx:          tx,
	}
}

// identify resolves the internal user id, creating the row on first contact.
func (s *Service) identify(ctx context.Context, platform domain.Platform, platformUserID string) (int64, error) {
	if !platform.IsValid() {
		return 0, domain.ErrValidation
	}
	if platformUserID == "" {
		return 0, domain.ErrValidation
	}
	return s.users.GetOrCreate(ctx, platform, platformUserID)
}
