// Package fourline is the high-level entry point for the fourline rules
// engine. It wraps the state store and the pure transition engine behind a
// small game API, and wires the optional persistence and metrics
// collaborators.
package fourline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fourline/fourline/internal/engine"
	"github.com/fourline/fourline/internal/logging"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/observability"
	"github.com/fourline/fourline/pkg/ports"
	"github.com/fourline/fourline/pkg/store"
)

// Game owns one board lineage inside a state store. All methods are safe
// for concurrent use; mutations are serialized by the store.
type Game struct {
	store     *store.Store
	snapshots ports.SnapshotStore
	recorder  *observability.Recorder
	logger    *slog.Logger
	strategy  domain.ColoringStrategy
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithLogger configures a logger for game and store events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithStrategy sets the coloring strategy for new boards. Defaults to
// domain.Player1Red.
func WithStrategy(strategy domain.ColoringStrategy) Option {
	return func(g *Game) {
		g.strategy = strategy
	}
}

// WithSnapshots wires a persistence collaborator for Save and Resume.
func WithSnapshots(snapshots ports.SnapshotStore) Option {
	return func(g *Game) {
		g.snapshots = snapshots
	}
}

// WithRecorder wires a metrics recorder.
func WithRecorder(recorder *observability.Recorder) Option {
	return func(g *Game) {
		g.recorder = recorder
	}
}

// New creates a game holding a clean board.
func New(opts ...Option) *Game {
	g := &Game{
		logger:   logging.NewNop(),
		strategy: domain.Player1Red,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.store = store.New(domain.NewBoard(g.strategy), store.WithLogger(g.logger))
	return g
}

// Apply advances a board snapshot by one transition. It is the pure
// transition function of the engine, exposed for callers that manage their
// own snapshots.
func Apply(state domain.BoardState, transition domain.Transition) domain.BoardState {
	return engine.Apply(state, transition)
}

// State returns the current board snapshot.
func (g *Game) State() domain.BoardState {
	return g.store.State()
}

// Store exposes the underlying state store for subscription streams.
func (g *Game) Store() *store.Store {
	return g.store
}

// Hover drops a preview token into the column for the current player. A
// stale preview left in the column (from an earlier turn) is replaced, and
// hovering a column that already previews the current color changes nothing.
// Disallowed hovers (full column, finished game) change nothing.
func (g *Game) Hover(column int) {
	g.store.UpdateFunc(func(current domain.BoardState) []domain.Transition {
		if !current.InProgress() || !current.ColumnOpen(column) {
			return nil
		}
		batch := []domain.Transition{domain.PlacePreviewToken{Column: column}}
		if preview, ok := current.ColumnPreview(column); ok {
			if preview.Color() == current.CurrentColor() {
				return nil
			}
			batch = append([]domain.Transition{domain.ClearPreviewToken{Column: column}}, batch...)
		}
		for _, t := range batch {
			g.recorder.Transition(domain.TransitionName(t))
		}
		return batch
	})
}

// ClearHover reverts the column's preview token, if any.
func (g *Game) ClearHover(column int) {
	g.store.UpdateFunc(func(current domain.BoardState) []domain.Transition {
		if !current.InProgress() {
			return nil
		}
		if _, ok := current.ColumnPreview(column); !ok {
			return nil
		}
		g.recorder.Transition(domain.TransitionName(domain.ClearPreviewToken{}))
		return []domain.Transition{domain.ClearPreviewToken{Column: column}}
	})
}

// Place plays a token in the column for the current player: the preview is
// dropped, committed, and the turn passes, published as one atomic batch so
// observers never see the intermediate snapshots. Any preview already in the
// column is discarded first, so a hovered column commits the mover's own
// color even when the hover came from an earlier turn. The turn does not
// pass when the placement ends the game. Disallowed moves (full column,
// finished game, off-grid column) change nothing. The resulting snapshot is
// returned.
func (g *Game) Place(column int) domain.BoardState {
	var result domain.BoardState
	var outcome string
	g.store.UpdateFunc(func(current domain.BoardState) []domain.Transition {
		result = current
		if !current.InProgress() || !current.ColumnOpen(column) {
			return nil
		}
		batch := []domain.Transition{
			domain.PlacePreviewToken{Column: column},
			domain.PlaceToken{Column: column},
		}
		if _, ok := current.ColumnPreview(column); ok {
			batch = append([]domain.Transition{domain.ClearPreviewToken{Column: column}}, batch...)
		}
		next := current
		for _, t := range batch {
			next = engine.Apply(next, t)
		}
		if next.InProgress() {
			batch = append(batch, domain.SwitchPlayer{})
			next = engine.Apply(next, domain.SwitchPlayer{})
		}
		result = next
		switch next.Status().(type) {
		case domain.Won:
			outcome = observability.OutcomeWon
		case domain.Draw:
			outcome = observability.OutcomeDraw
		}
		for _, t := range batch {
			g.recorder.Transition(domain.TransitionName(t))
		}
		return batch
	})
	if outcome != "" {
		g.recorder.GameFinished(outcome)
		g.logger.Info("game finished", "outcome", outcome)
	}
	return result
}

// Restart discards the current lineage and starts a clean board with the
// same coloring strategy.
func (g *Game) Restart() {
	g.store.Reset(domain.NewBoard(g.strategy))
	g.logger.Info("game restarted")
}

// Save persists the current snapshot under the given game ID. It requires a
// persistence collaborator wired via WithSnapshots.
func (g *Game) Save(ctx context.Context, gameID string) error {
	if g.snapshots == nil {
		return fmt.Errorf("no snapshot store configured")
	}
	if err := g.snapshots.Save(ctx, gameID, ports.FromBoard(g.store.State())); err != nil {
		return fmt.Errorf("failed to save game %q: %w", gameID, err)
	}
	return nil
}

// Resume replaces the current lineage with a previously saved game.
func (g *Game) Resume(ctx context.Context, gameID string) error {
	if g.snapshots == nil {
		return fmt.Errorf("no snapshot store configured")
	}
	snapshot, err := g.snapshots.Load(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to load game %q: %w", gameID, err)
	}
	board, err := snapshot.Board()
	if err != nil {
		return fmt.Errorf("failed to restore game %q: %w", gameID, err)
	}
	g.store.Reset(board)
	g.logger.Info("game resumed", "game_id", gameID)
	return nil
}
