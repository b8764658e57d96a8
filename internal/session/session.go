// Package session owns the client's authenticated state: the opaque
// credential, the user summary, and the KYC maturity level. All mutation goes
// through this package; views and services only read.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"bankclient/internal/storage"
)

// Persisted store keys. The three values live and die together: login writes
// all of them, Clear removes all of them. A partial clear is a correctness
// bug (a stale credential with a fresh KYC level, or the reverse).
const (
	keyToken    = "token"
	keyUserInfo = "userInfo"
	keyKycLevel = "kycLevel"
)

// UserSummary is the slice of profile data the client keeps locally.
type UserSummary struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
}

// Session is the process-wide authenticated state. It is created empty at
// startup and hydrated from the persisted store; only the auth service, the
// user service, and the dispatcher's invalidation path mutate it.
type Session struct {
	mu       sync.RWMutex
	store    storage.Store
	token    string
	user     *UserSummary
	kycLevel Level
}

func New(store storage.Store) *Session {
	return &Session{store: store}
}

// Hydrate loads persisted state. Absent keys leave the session empty; a
// corrupt user summary is discarded rather than propagated.
func (s *Session) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Get(keyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("failed to hydrate session: %w", err)
		}
		return nil
	}
	s.token = token

	if raw, err := s.store.Get(keyUserInfo); err == nil {
		var user UserSummary
		if jsonErr := json.Unmarshal([]byte(raw), &user); jsonErr == nil {
			s.user = &user
		} else {
			slog.Warn("discarding corrupt persisted user summary", "error", jsonErr)
		}
	}

	if raw, err := s.store.Get(keyKycLevel); err == nil {
		if level, convErr := strconv.Atoi(raw); convErr == nil {
			s.kycLevel = Level(level)
		}
	}

	return nil
}

// Token returns the opaque credential, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// User returns a copy of the stored user summary, or nil.
func (s *Session) User() *UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) KycLevel() Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kycLevel
}

// IsAccountOpened reports whether the fully-verified feature set is unlocked.
func (s *Session) IsAccountOpened() bool {
	return s.KycLevel().Opened()
}

// Login installs a fresh credential and user summary after a successful
// authentication call, persisting both. The KYC level is left at its
// persisted value; only a profile fetch may move it.
func (s *Session) Login(token string, user UserSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user

	if err := s.store.Set(keyToken, token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user summary: %w", err)
	}
	if err := s.store.Set(keyUserInfo, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user summary: %w", err)
	}
	if err := s.store.Set(keyKycLevel, strconv.Itoa(int(s.kycLevel))); err != nil {
		return fmt.Errorf("failed to persist kyc level: %w", err)
	}

	return nil
}

// SetUser replaces the user summary, keeping credential and level intact.
func (s *Session) SetUser(user UserSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user summary: %w", err)
	}
	if err := s.store.Set(keyUserInfo, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user summary: %w", err)
	}
	return nil
}

// ApplyKycLevel records the backend-reported level verbatim. The backend is
// authoritative: a decrease is accepted.
func (s *Session) ApplyKycLevel(level Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.kycLevel
	s.kycLevel = level
	if err := s.store.Set(keyKycLevel, strconv.Itoa(int(level))); err != nil {
		return fmt.Errorf("failed to persist kyc level: %w", err)
	}

	if previous != level {
		slog.Info("kyc level updated",
			"previous", previous.String(),
			"current", level.String())
	}
	return nil
}

// CompleteKyc advances the level to verified. Callers must only invoke it
// after the certification submission has succeeded.
func (s *Session) CompleteKyc() error {
	return s.ApplyKycLevel(LevelVerified)
}

// Clear wipes credential, user summary, and KYC level in one step, both in
// memory and in the persisted store.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.kycLevel = LevelUnverified

	for _, key := range []string{keyToken, keyUserInfo, keyKycLevel} {
		if err := s.store.Delete(key); err != nil {
			slog.Error("failed to clear persisted session key", "key", key, "error", err)
		}
	}
}
