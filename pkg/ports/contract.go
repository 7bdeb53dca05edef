package ports

import (
	"context"
	"testing"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract verifies that a SnapshotStore implementation
// honors the port semantics. Every adapter test suite runs it.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	snapshot := FromBoard(domain.NewBoard(domain.Player1Red))

	// Load of an absent game reports not-found.
	_, err := store.Load(ctx, "contract-missing")
	require.ErrorIs(t, err, domain.ErrGameNotFound)

	// Save then load round-trips the tuple.
	require.NoError(t, store.Save(ctx, "contract-a", snapshot))
	loaded, err := store.Load(ctx, "contract-a")
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	// Overwrite replaces the stored tuple.
	board, err := loaded.Board()
	require.NoError(t, err)
	replaced := FromBoard(board.WithPlayer(domain.Player2))
	require.NoError(t, store.Save(ctx, "contract-a", replaced))
	loaded, err = store.Load(ctx, "contract-a")
	require.NoError(t, err)
	assert.Equal(t, string(domain.Player2), loaded.Player)

	// List includes every stored ID.
	require.NoError(t, store.Save(ctx, "contract-b", snapshot))
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "contract-a")
	assert.Contains(t, ids, "contract-b")

	// Delete removes the game; deleting it again is not an error.
	require.NoError(t, store.Delete(ctx, "contract-a"))
	_, err = store.Load(ctx, "contract-a")
	require.ErrorIs(t, err, domain.ErrGameNotFound)
	require.NoError(t, store.Delete(ctx, "contract-a"))

	require.NoError(t, store.Delete(ctx, "contract-b"))
}
