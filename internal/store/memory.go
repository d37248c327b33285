// internal/store/memory.go
//
// In-memory implementation of game.Store. Used in tests and when
// durability is not required; state is lost on restart.
//
// Characteristics:
//   - Sessions keyed by ID in a map, guarded by an RWMutex.
//   - Save and Get both deep-copy, so callers never alias stored state.

package store

import (
	"context"
	"sync"

	"github.com/wordguess/go-server/internal/game"
)

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory game.Store.
func NewMemoryStore() game.Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.Clone(), nil
	}
	return nil, game.ErrNotFound
}
