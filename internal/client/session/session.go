// Package session keeps track of the signed-in user on the client side.
//
// A session is persisted across process restarts through a small Storage
// abstraction holding two string slots: the raw JWT and the serialized
// identity of the signed-in user.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/corebank/banking-system/internal/core/domain"
)

// Storage slot names. Kept stable so state written by one client version can
// be read by the next.
const (
	SlotToken    = "token"
	SlotIdentity = "identity"
)

// Storage is a minimal two-slot string store backing session persistence.
type Storage interface {
	// Get returns the slot value and whether it was present.
	Get(slot string) (string, bool, error)
	Set(slot, value string) error
	Delete(slot string) error
}

// Identity describes the signed-in user as returned by the login endpoint.
type Identity struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Active   bool        `json:"active"`
}

// Session pairs an identity with the bearer token proving it.
type Session struct {
	Identity Identity
	Token    string
}

// Store holds the current session in memory and mirrors it to a Storage.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	current *Session
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Restore loads the session from storage into memory. Missing or malformed
// state yields a signed-out store rather than an error: stale local state
// must never block the user from reaching the login screen.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	token, ok, err := s.storage.Get(SlotToken)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	raw, ok, err := s.storage.Get(SlotIdentity)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if !ok {
		return nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil
	}
	if !identity.Role.Valid() {
		return nil
	}

	s.current = &Session{Identity: identity, Token: token}
	return nil
}

// Persist stores a freshly authenticated session in both slots and makes it
// the current one.
func (s *Store) Persist(identity Identity, token string) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(SlotToken, token); err != nil {
		return fmt.Errorf("session persist: %w", err)
	}
	if err := s.storage.Set(SlotIdentity, string(raw)); err != nil {
		return fmt.Errorf("session persist: %w", err)
	}

	s.current = &Session{Identity: identity, Token: token}
	return nil
}

// Clear signs the user out. The in-memory session is dropped even when the
// underlying storage fails to delete, so a logout always takes effect locally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.storage.Delete(SlotToken)
	_ = s.storage.Delete(SlotIdentity)
	s.current = nil
}

// Current returns a copy of the active session, or nil when signed out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// Token returns the bearer token of the active session, or "" when signed out.
func (s *Store) Token() string {
	sess := s.Current()
	if sess == nil {
		return ""
	}
	return sess.Token
}
