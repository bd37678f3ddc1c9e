package booking

import (
	"sync"
	"time"
)

// Store keeps booking sessions in memory.
type Store interface {
	Add(s *Session)
	// Get returns the session and marks it as recently used.
	Get(id string) (*Session, error)
	Delete(id string)
	// Sweep drops sessions idle for longer than the TTL and returns how many were removed.
	Sweep() int
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a store whose sessions expire after ttl of
// inactivity. A ttl of zero disables expiry.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

func (m *memoryStore) Add(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.LastSeenAt = m.now()
	m.sessions[s.ID] = s
}

func (m *memoryStore) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.LastSeenAt = now
	return s, nil
}

func (m *memoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

func (m *memoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *memoryStore) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.LastSeenAt) > m.ttl
}
