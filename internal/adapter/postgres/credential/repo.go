// Package credential implements the encrypted-credential repository using
// PostgreSQL. Only ciphertext ever touches this package; encryption and
// decryption live in the vault.
package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres"
	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Repo provides credential persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new credential repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored credential for a user, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID int64) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Credential
	err := q.QueryRow(ctx,
		`SELECT user_id, ciphertext, updated_at FROM user_credentials WHERE user_id = $1`,
		userID,
	).Scan(&c.UserID, &c.Ciphertext, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("credential for user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("credential for user %d: %w", userID, err)
	}

	return &c, nil
}

const upsertSQL = `
INSERT INTO user_credentials (user_id, ciphertext, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id)
    DO UPDATE SET ciphertext = EXCLUDED.ciphertext, updated_at = now()`

// Upsert inserts or replaces the user's credential, refreshing updated_at.
func (r *Repo) Upsert(ctx context.Context, userID int64, ciphertext string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, upsertSQL, userID, ciphertext); err != nil {
		return fmt.Errorf("upsert credential for user %d: %w", userID, err)
	}

	return nil
}

// Delete removes the user's credential. Deleting a missing row is a no-op.
func (r *Repo) Delete(ctx context.Context, userID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM user_credentials WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete credential for user %d: %w", userID, err)
	}

	return nil
}
