package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/media-finder/models"
)

// memorySessionStore keeps sessions in a process-local map. Sessions do not
// survive a restart.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore constructs an empty in-memory [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
	}
}

func (m *memorySessionStore) Save(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.Token] = session
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, token string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (m *memorySessionStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

func (m *memorySessionStore) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for token, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, token)
			purged++
		}
	}
	return purged, nil
}
