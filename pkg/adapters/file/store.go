// Package file implements ports.SnapshotStore on the local filesystem.
// Each game is one JSON file in a configured directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/ports"
)

const extension = ".json"

// Store implements ports.SnapshotStore using one JSON file per game.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. If dir is empty, it defaults to
// ".fourline/games".
func NewStore(dir string) *Store {
	if dir == "" {
		dir = filepath.Join(".fourline", "games")
	}
	return &Store{dir: dir}
}

func (s *Store) path(gameID string) string {
	return filepath.Join(s.dir, gameID+extension)
}

// Save writes the snapshot as an indented JSON file.
func (s *Store) Save(ctx context.Context, gameID string, snapshot ports.Snapshot) error {
	if gameID == "" {
		return fmt.Errorf("game ID cannot be empty")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure game directory: %w", err)
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(gameID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write game file: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot for a game ID.
func (s *Store) Load(ctx context.Context, gameID string) (ports.Snapshot, error) {
	if gameID == "" {
		return ports.Snapshot{}, fmt.Errorf("game ID cannot be empty")
	}
	data, err := os.ReadFile(s.path(gameID))
	if err != nil {
		if os.IsNotExist(err) {
			return ports.Snapshot{}, domain.ErrGameNotFound
		}
		return ports.Snapshot{}, fmt.Errorf("failed to read game file: %w", err)
	}
	var snapshot ports.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return ports.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the game file. Deleting an absent game is not an error.
func (s *Store) Delete(ctx context.Context, gameID string) error {
	if gameID == "" {
		return fmt.Errorf("game ID cannot be empty")
	}
	if err := os.Remove(s.path(gameID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete game file: %w", err)
	}
	return nil
}

// List returns all stored game IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), extension))
	}
	return ids, nil
}
