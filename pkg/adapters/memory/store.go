// Package memory implements ports.SnapshotStore in memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/ports"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]ports.Snapshot
}

// NewStore creates a new in-memory snapshot store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]ports.Snapshot),
	}
}

// Save persists the snapshot in memory. The cell slice is copied so later
// mutations by the caller cannot leak into the store.
func (s *Store) Save(ctx context.Context, gameID string, snapshot ports.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[gameID] = copySnapshot(snapshot)
	return nil
}

// Load retrieves the snapshot for a game ID.
func (s *Store) Load(ctx context.Context, gameID string) (ports.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.data[gameID]
	if !ok {
		return ports.Snapshot{}, domain.ErrGameNotFound
	}
	return copySnapshot(snapshot), nil
}

// Delete removes the snapshot for a game ID.
func (s *Store) Delete(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, gameID)
	return nil
}

// List returns all stored game IDs in deterministic order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func copySnapshot(snapshot ports.Snapshot) ports.Snapshot {
	copied := snapshot
	copied.Cells = append([]ports.CellSnapshot(nil), snapshot.Cells...)
	if snapshot.Win != nil {
		win := *snapshot.Win
		win.Positions = append([]domain.Position(nil), snapshot.Win.Positions...)
		copied.Win = &win
	}
	return copied
}
