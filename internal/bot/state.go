// Package bot contains the platform-independent conversation logic: the
// per-user dialog state machine and the event dispatcher. Platform adapters
// translate SDK events into Event values and deliver outbound text through
// the Messenger interface.
package bot

import (
	"sync"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// DialogState is the pending setting dialog for one user. A user absent
// from the store is Idle.
type DialogState int

const (
	StateIdle DialogState = iota
	StateAwaitingAPIKey
	StateAwaitingAllergyList
)

func (s DialogState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAPIKey:
		return "awaiting_api_key"
	case StateAwaitingAllergyList:
		return "awaiting_allergy_list"
	default:
		return "unknown"
	}
}

type dialogKey struct {
	platform domain.Platform
	userID   string
}

// StateStore tracks pending dialogs. It is the only shared mutable map in
// the bot; all access goes through the mutex and no lock is held across I/O.
type StateStore struct {
	mu sync.Mutex
	m  map[dialogKey]DialogState
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{m: make(map[dialogKey]DialogState)}
}

// Set records a pending dialog, overwriting any previous one.
func (s *StateStore) Set(platform domain.Platform, userID string, state DialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == StateIdle {
		delete(s.m, dialogKey{platform, userID})
		return
	}
	s.m[dialogKey{platform, userID}] = state
}

// Pop returns the user's pending dialog and removes it. The next text
// message always consumes the state, whatever the outcome.
func (s *StateStore) Pop(platform domain.Platform, userID string) DialogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dialogKey{platform, userID}
	state, ok := s.m[key]
	if !ok {
		return StateIdle
	}
	delete(s.m, key)
	return state
}

// Clear drops any pending dialog for the user.
func (s *StateStore) Clear(platform domain.Platform, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, dialogKey{platform, userID})
}
