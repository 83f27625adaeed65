// README: In-memory session store (default backend, single process only).
package session

import (
	"context"
	"sync"

	"tripmate/internal/planner"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*planner.TripState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*planner.TripState)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*planner.TripState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return st.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, st *planner.TripState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[st.SessionID] = st.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
