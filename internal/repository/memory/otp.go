// Package memory provides process-local store implementations for
// development and tests.
package memory

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/dtroode/authgate-server/internal/model"
)

var _ model.OTPStore = (*OTPStore)(nil)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

func (e otpEntry) live(now time.Time) bool {
	return e.expiresAt.IsZero() || now.Before(e.expiresAt)
}

// OTPStore keeps passcodes in a map guarded by a mutex. Expired entries are
// treated as absent and dropped lazily.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	now     func() time.Time
}

func NewOTPStore() *OTPStore {
	return &OTPStore{entries: make(map[string]otpEntry), now: time.Now}
}

func (s *OTPStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// lookup must be called with mu held.
func (s *OTPStore) lookup(key string) (otpEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return otpEntry{}, false
	}
	if !e.live(s.now()) {
		delete(s.entries, key)
		return otpEntry{}, false
	}
	return e, true
}

func (s *OTPStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", model.ErrNotFound
	}
	return e.code, nil
}

func (s *OTPStore) Set(ctx context.Context, key, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = otpEntry{code: code, expiresAt: s.expiry(ttl)}
	return nil
}

func (s *OTPStore) SetIfAbsent(ctx context.Context, key, code string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.lookup(key); ok {
		return e.code, nil
	}
	s.entries[key] = otpEntry{code: code, expiresAt: s.expiry(ttl)}
	return code, nil
}

func (s *OTPStore) CompareAndDelete(ctx context.Context, key, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(code)) != 1 {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

func (s *OTPStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
