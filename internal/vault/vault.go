// Package vault encrypts user-supplied LLM API keys at rest.
//
// The encryption key is derived once at startup by hashing a deployment-wide
// secret string; ciphertext is AES-256-GCM, serialized as URL-safe base64 so
// it can live in a text column.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Vault performs symmetric encryption of credentials. The derived key is
// read-only after construction, so a single Vault is safe for concurrent use.
type Vault struct {
	aead cipher.AEAD
}

// New derives a 32-byte AES key from the deployment secret (SHA-256) and
// returns a ready Vault. An empty secret is a configuration error.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, fmt.Errorf("vault: secret must not be empty")
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("vault: create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault: create gcm: %w", err)
	}

	return &Vault{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce and returns
// base64url(nonce || ciphertext).
func (v *Vault) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault: generate nonce: %w", err)
	}

	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Corrupted, truncated or
// foreign-key ciphertext returns domain.ErrDecryptFailed — never a raw
// crypto error, and never a panic.
func (v *Vault) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("vault: decode: %w", domain.ErrDecryptFailed)
	}

	if len(raw) < v.aead.NonceSize() {
		return "", fmt.Errorf("vault: ciphertext too short: %w", domain.ErrDecryptFailed)
	}

	nonce, sealed := raw[:v.aead.NonceSize()], raw[v.aead.NonceSize():]

	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("vault: open: %w", domain.ErrDecryptFailed)
	}

	return string(plaintext), nil
}
