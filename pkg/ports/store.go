package ports

import "context"

// SnapshotStore is the persistence port. Implementations own the storage
// encoding; the core only requires the Snapshot tuple shape.
type SnapshotStore interface {
	// Save persists the snapshot for a given game ID, overwriting any
	// previous one.
	Save(ctx context.Context, gameID string, snapshot Snapshot) error

	// Load retrieves the snapshot for a given game ID.
	// Returns domain.ErrGameNotFound if the game does not exist.
	Load(ctx context.Context, gameID string) (Snapshot, error)

	// Delete removes the snapshot for a given game ID. Deleting an absent
	// game is not an error.
	Delete(ctx context.Context, gameID string) error

	// List returns the IDs of all stored games.
	List(ctx context.Context) ([]string, error)
}
