package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrNoCredential means the user has no usable LLM API key configured.
	// Both a missing row and an undecryptable ciphertext map here: callers
	// treat absence as a first-class outcome, not a failure.
	ErrNoCredential = errors.New("no credential configured")

	// ErrDecryptFailed is returned by the vault for corrupted or
	// mismatched ciphertext. It never escapes the profile service.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrInvalidImage means the uploaded bytes could not be decoded by any
	// supported image codec.
	ErrInvalidImage = errors.New("invalid image")

	// ErrBadAPIKey means the LLM provider rejected the caller's key.
	// Distinguished from ErrPipelineFailed so the user can be told to
	// re-check the key instead of simply retrying.
	ErrBadAPIKey = errors.New("llm provider rejected api key")

	// ErrPipelineFailed means the terminal analysis stage produced no
	// answer (provider error or empty completion).
	ErrPipelineFailed = errors.New("analysis pipeline failed")
)
