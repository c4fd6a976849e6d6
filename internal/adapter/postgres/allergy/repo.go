// Package allergy implements the allergy vocabulary and user-allergy
// association repository using PostgreSQL.
package allergy

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/allergymenu/allergymenu-backend/internal/adapter/postgres"
)

// Repo provides allergy persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new allergy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetForUser returns the allergen names configured for a user.
// A user without allergies yields an empty slice, not an error.
func (r *Repo) GetForUser(ctx context.Context, userID int64) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select("a.name").
		From("allergies a").
		Join("user_allergies ua ON ua.allergy_id = a.id").
		Where(sq.Eq{"ua.user_id": userID}).
		OrderBy("a.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build allergy query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get allergies for user %d: %w", userID, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan allergy: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate allergies: %w", err)
	}

	return names, nil
}

const upsertAllergySQL = `
INSERT INTO allergies (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`

// ReplaceForUser replaces the user's allergy set with names: existing
// associations are deleted, missing vocabulary entries created, new
// associations inserted. An empty input clears the set.
//
// The delete and the inserts are NOT atomic on their own; callers run this
// inside TxManager.RunInTx so the whole replacement commits or rolls back
// as one unit.
func (r *Repo) ReplaceForUser(ctx context.Context, userID int64, names []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM user_allergies WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear allergies for user %d: %w", userID, err)
	}

	names = dedupe(names)
	if len(names) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		if err := q.QueryRow(ctx, upsertAllergySQL, name).Scan(&id); err != nil {
			return fmt.Errorf("upsert allergy %q: %w", name, err)
		}
		ids = append(ids, id)
	}

	insert := r.sb.
		Insert("user_allergies").
		Columns("user_id", "allergy_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, id := range ids {
		insert = insert.Values(userID, id)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build allergy insert: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("link allergies for user %d: %w", userID, err)
	}

	return nil
}

// CountForUser returns the number of allergies configured for a user.
func (r *Repo) CountForUser(ctx context.Context, userID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM user_allergies WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("count allergies for user %d: %w", userID, err)
	}

	return n, nil
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
