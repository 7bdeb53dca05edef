package middleware_test

import (
	"context"
	"testing"

	"github.com/fourline/fourline/internal/logging"
	"github.com/fourline/fourline/pkg/adapters/memory"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/persistence/middleware"
	"github.com/fourline/fourline/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMiddleware tags each operation so chain ordering is observable.
func recordingMiddleware(tag string, calls *[]string) middleware.Middleware {
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &recordingStore{tag: tag, calls: calls, next: next}
	}
}

type recordingStore struct {
	tag   string
	calls *[]string
	next  ports.SnapshotStore
}

func (r *recordingStore) Save(ctx context.Context, id string, s ports.Snapshot) error {
	*r.calls = append(*r.calls, r.tag)
	return r.next.Save(ctx, id, s)
}

func (r *recordingStore) Load(ctx context.Context, id string) (ports.Snapshot, error) {
	*r.calls = append(*r.calls, r.tag)
	return r.next.Load(ctx, id)
}

func (r *recordingStore) Delete(ctx context.Context, id string) error {
	*r.calls = append(*r.calls, r.tag)
	return r.next.Delete(ctx, id)
}

func (r *recordingStore) List(ctx context.Context) ([]string, error) {
	*r.calls = append(*r.calls, r.tag)
	return r.next.List(ctx)
}

func TestChain_OrdersOutermostFirst(t *testing.T) {
	var calls []string
	store := middleware.Chain(memory.NewStore(),
		recordingMiddleware("outer", &calls),
		recordingMiddleware("inner", &calls),
	)

	_, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestLoggingMiddleware_PreservesContract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logging.NewNop()))
	ports.RunSnapshotStoreContract(t, store)
}

func TestLoggingMiddleware_PropagatesErrors(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logging.NewNop()))

	_, err := store.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}
