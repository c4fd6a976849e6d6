package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row for a random platform user id and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		Platform:       domain.PlatformTelegram,
		PlatformUserID: "tg-" + uniqueSuffix(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (platform, platform_user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		string(user.Platform), user.PlatformUserID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAllergies links the given allergen names to the user, creating
// vocabulary entries as needed.
func SeedAllergies(t *testing.T, pool *pgxpool.Pool, userID int64, names []string) {
	t.Helper()
	ctx := context.Background()

	for _, name := range names {
		var allergyID int64
		err := pool.QueryRow(ctx,
			`INSERT INTO allergies (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			name,
		).Scan(&allergyID)
		if err != nil {
			t.Fatalf("testhelper: SeedAllergies upsert %q: %v", name, err)
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO user_allergies (user_id, allergy_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			userID, allergyID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedAllergies link %q: %v", name, err)
		}
	}
}
