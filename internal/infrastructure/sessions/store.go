// Package sessions keeps the server-side login state. A session is an opaque
// id stored in Redis (or in process memory when Redis is not configured)
// mapped to the user id; the client only ever holds a signed token wrapping
// that id.
package sessions

import (
	"context"
	"sync"
	"time"

	"docledger/internal/common"
)

// Store maps session ids to user ids for the lifetime of a login.
type Store interface {
	Put(ctx context.Context, sid string, userID uint, ttl time.Duration) error
	// Get returns the user id for sid, or common.ErrNotFound when the session
	// does not exist or has expired.
	Get(ctx context.Context, sid string) (uint, error)
	Delete(ctx context.Context, sid string) error
}

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is the single-instance fallback used when no REDIS_URL is set,
// and by the tests. A multi-instance deployment needs the Redis store or
// sticky routing in front of this one.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	s.sessions[sid] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

// purgeExpiredLocked drops expired entries so abandoned sessions do not
// accumulate between lookups. Caller holds the write lock.
func (s *MemoryStore) purgeExpiredLocked() {
	now := time.Now()
	for sid, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, sid)
		}
	}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (uint, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return 0, common.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return 0, common.ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}
