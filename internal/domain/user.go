package domain

import "time"

// Platform identifies the messaging platform a user reached us through.
type Platform string

const (
	PlatformLine     Platform = "line"
	PlatformTelegram Platform = "telegram"
	PlatformWeb      Platform = "web"
)

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	switch p {
	case PlatformLine, PlatformTelegram, PlatformWeb:
		return true
	}
	return false
}

// User is the internal identity behind a platform account.
// A row is created lazily on first contact; (Platform, PlatformUserID) is unique.
type User struct {
	ID             int64
	Platform       Platform
	PlatformUserID string
	CreatedAt      time.Time
}

// Credential is the encrypted LLM API key belonging to one user.
// The plaintext key is never persisted; Ciphertext is produced by the vault.
type Credential struct {
	UserID     int64
	Ciphertext string
	UpdatedAt  time.Time
}
