// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres"
	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Repo provides user identity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getOrCreateSQL = `
INSERT INTO users (platform, platform_user_id)
VALUES ($1, $2)
ON CONFLICT (platform, platform_user_id)
    DO UPDATE SET platform_user_id = EXCLUDED.platform_user_id
RETURNING id`

// GetOrCreate returns the internal id for (platform, platformUserID),
// creating the row on first contact. The upsert is a single statement, so
// concurrent first contacts race safely on the unique index and both
// observe the same id.
func (r *Repo) GetOrCreate(ctx context.Context, platform domain.Platform, platformUserID string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := q.QueryRow(ctx, getOrCreateSQL, string(platform), platformUserID).Scan(&id)
	if err != nil {
		return 0, mapError(err, "user", platformUserID)
	}

	return id, nil
}

// Get returns the user row for (platform, platformUserID).
func (r *Repo) Get(ctx context.Context, platform domain.Platform, platformUserID string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := q.QueryRow(ctx,
		`SELECT id, platform, platform_user_id, created_at
		 FROM users WHERE platform = $1 AND platform_user_id = $2`,
		string(platform), platformUserID,
	).Scan(&u.ID, &u.Platform, &u.PlatformUserID, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err, "user", platformUserID)
	}

	return &u, nil
}

// Delete removes the user row; credential and allergy associations go with
// it via ON DELETE CASCADE. Deleting a nonexistent user is a no-op.
func (r *Repo) Delete(ctx context.Context, platform domain.Platform, platformUserID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM users WHERE platform = $1 AND platform_user_id = $2`,
		string(platform), platformUserID,
	)
	if err != nil {
		return mapError(err, "user", platformUserID)
	}

	return nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
