package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/fourline/fourline/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SnapshotStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation with its duration and
// outcome at debug level; failures surface at warn.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(op, gameID string, start time.Time, err error) {
	attrs := []any{"op", op, "game_id", gameID, "duration", time.Since(start)}
	if err != nil {
		m.logger.Warn("snapshot store operation failed", append(attrs, "err", err)...)
		return
	}
	m.logger.Debug("snapshot store operation", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, gameID string, snapshot ports.Snapshot) error {
	start := time.Now()
	err := m.next.Save(ctx, gameID, snapshot)
	m.log("save", gameID, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, gameID string) (ports.Snapshot, error) {
	start := time.Now()
	snapshot, err := m.next.Load(ctx, gameID)
	m.log("load", gameID, start, err)
	return snapshot, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, gameID string) error {
	start := time.Now()
	err := m.next.Delete(ctx, gameID)
	m.log("delete", gameID, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return ids, err
}
