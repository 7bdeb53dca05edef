package fourline_test

import (
	"context"
	"testing"

	"github.com/fourline/fourline"
	"github.com/fourline/fourline/pkg/adapters/memory"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_PlaceAlternatesTurns(t *testing.T) {
	game := fourline.New()

	state := game.Place(3)
	placed, ok := state.Cell(domain.Position{Row: 5, Column: 3}).(domain.Placed)
	require.True(t, ok)
	assert.Equal(t, domain.Red, placed.Color())
	assert.Equal(t, domain.Player2, state.CurrentPlayer())

	state = game.Place(3)
	placed, ok = state.Cell(domain.Position{Row: 4, Column: 3}).(domain.Placed)
	require.True(t, ok)
	assert.Equal(t, domain.Yellow, placed.Color())
	assert.Equal(t, domain.Player1, state.CurrentPlayer())
}

func TestGame_PlacePublishesOneSnapshotPerMove(t *testing.T) {
	game := fourline.New()

	notifications := 0
	cancel := game.Store().Subscribe(func(domain.BoardState) { notifications++ })
	defer cancel()

	game.Place(0)
	assert.Equal(t, 1, notifications, "preview, placement and turn pass commit as one batch")
}

func TestGame_WinningMoveKeepsTheTurn(t *testing.T) {
	game := fourline.New()

	// Player 1 stacks column 0, player 2 column 6.
	for i := 0; i < 3; i++ {
		game.Place(0)
		game.Place(6)
	}
	state := game.Place(0)

	won, ok := state.Status().(domain.Won)
	require.True(t, ok)
	assert.Equal(t, domain.Player1, won.Winner)
	assert.Equal(t, domain.Red, won.Color)
	// The turn never passed after the winning placement.
	assert.Equal(t, domain.Player1, state.CurrentPlayer())

	// The finished game rejects further moves.
	after := game.Place(1)
	assert.IsType(t, domain.Empty{}, after.Cell(domain.Position{Row: 5, Column: 1}))
	assert.Equal(t, won, after.Status())
}

func TestGame_PlaceOnFullColumnIsANoOp(t *testing.T) {
	game := fourline.New()

	for i := 0; i < domain.Rows; i++ {
		game.Place(2)
	}
	require.True(t, game.State().ColumnFull(2))
	before := game.State()

	notifications := 0
	cancel := game.Store().Subscribe(func(domain.BoardState) { notifications++ })
	defer cancel()

	after := game.Place(2)
	assert.Equal(t, before.Cells(), after.Cells())
	assert.Equal(t, before.CurrentPlayer(), after.CurrentPlayer())
	assert.Equal(t, 0, notifications, "rejected moves publish nothing")
}

func TestGame_PlaceOffGridIsANoOp(t *testing.T) {
	game := fourline.New()
	state := game.Place(7)
	assert.Equal(t, domain.Player1, state.CurrentPlayer())
	assert.True(t, state.InProgress())
}

func TestGame_HoverLifecycle(t *testing.T) {
	game := fourline.New()
	pos := domain.Position{Row: 5, Column: 4}

	game.Hover(4)
	preview, ok := game.State().Cell(pos).(domain.Preview)
	require.True(t, ok)
	assert.Equal(t, domain.Red, preview.Color())

	game.ClearHover(4)
	assert.IsType(t, domain.Empty{}, game.State().Cell(pos))
}

func TestGame_PlaceCommitsAHoveredColumn(t *testing.T) {
	game := fourline.New()

	game.Hover(3)
	state := game.Place(3)

	placed, ok := state.Cell(domain.Position{Row: 5, Column: 3}).(domain.Placed)
	require.True(t, ok)
	assert.Equal(t, domain.Red, placed.Color())
	// The hovered cell committed; nothing dangles above it.
	assert.IsType(t, domain.Empty{}, state.Cell(domain.Position{Row: 4, Column: 3}))
	assert.Equal(t, domain.Player2, state.CurrentPlayer())

	// The opponent's move in the same column lands with their own color.
	state = game.Place(3)
	placed, ok = state.Cell(domain.Position{Row: 4, Column: 3}).(domain.Placed)
	require.True(t, ok)
	assert.Equal(t, domain.Yellow, placed.Color())
	assert.Equal(t, domain.Player1, state.CurrentPlayer())
}

func TestGame_PlaceDiscardsAStaleHover(t *testing.T) {
	game := fourline.New()

	// Player 1 hovers column 2 but plays column 3, leaving a red preview
	// behind in column 2.
	game.Hover(2)
	game.Place(3)

	// Player 2's move in column 2 lands yellow; the stale red preview must
	// not be committed on their behalf.
	state := game.Place(2)
	placed, ok := state.Cell(domain.Position{Row: 5, Column: 2}).(domain.Placed)
	require.True(t, ok)
	assert.Equal(t, domain.Yellow, placed.Color())
	assert.Equal(t, domain.Player1, state.CurrentPlayer())
}

func TestGame_HoverTwiceKeepsOnePreview(t *testing.T) {
	game := fourline.New()
	game.Hover(4)

	notifications := 0
	cancel := game.Store().Subscribe(func(domain.BoardState) { notifications++ })
	defer cancel()

	game.Hover(4)
	assert.IsType(t, domain.Preview{}, game.State().Cell(domain.Position{Row: 5, Column: 4}))
	assert.IsType(t, domain.Empty{}, game.State().Cell(domain.Position{Row: 4, Column: 4}))
	assert.Equal(t, 0, notifications, "re-hovering a previewed column publishes nothing")
}

func TestGame_HoverRecolorsAStalePreview(t *testing.T) {
	game := fourline.New()

	// Player 1 hovers column 2, then plays column 3 and passes the turn.
	game.Hover(2)
	game.Place(3)

	game.Hover(2)
	preview, ok := game.State().Cell(domain.Position{Row: 5, Column: 2}).(domain.Preview)
	require.True(t, ok)
	assert.Equal(t, domain.Yellow, preview.Color())
	assert.IsType(t, domain.Empty{}, game.State().Cell(domain.Position{Row: 4, Column: 2}))
}

func TestGame_Restart(t *testing.T) {
	game := fourline.New(fourline.WithStrategy(domain.Player1Yellow))

	game.Place(0)
	game.Restart()

	state := game.State()
	assert.IsType(t, domain.Empty{}, state.Cell(domain.Position{Row: 5, Column: 0}))
	assert.Equal(t, domain.Player1, state.CurrentPlayer())
	assert.Equal(t, domain.Yellow, state.CurrentColor(), "restart keeps the coloring strategy")
}

func TestGame_SaveAndResume(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.NewStore()

	game := fourline.New(fourline.WithSnapshots(snapshots))
	game.Place(3)
	game.Place(4)
	saved := game.State()
	require.NoError(t, game.Save(ctx, "match-1"))

	game.Restart()
	require.NoError(t, game.Resume(ctx, "match-1"))

	resumed := game.State()
	assert.Equal(t, saved.Cells(), resumed.Cells())
	assert.Equal(t, saved.CurrentPlayer(), resumed.CurrentPlayer())
	assert.Equal(t, saved.Status(), resumed.Status())
}

func TestGame_ResumeMissingGame(t *testing.T) {
	game := fourline.New(fourline.WithSnapshots(memory.NewStore()))
	err := game.Resume(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestGame_PersistenceRequiresAStore(t *testing.T) {
	game := fourline.New()
	assert.Error(t, game.Save(context.Background(), "x"))
	assert.Error(t, game.Resume(context.Background(), "x"))
}

// transitionCount reads one labeled transition counter out of the registry.
// A counter that was never incremented reads as zero.
func transitionCount(t *testing.T, registry *prometheus.Registry, transition string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "fourline_transitions_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == transition {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestGame_RecordsOnlyCommittedTransitions(t *testing.T) {
	registry := prometheus.NewRegistry()
	game := fourline.New(fourline.WithRecorder(observability.NewRecorder(registry)))

	game.ClearHover(3) // nothing to clear
	game.Hover(-1)     // off the grid
	game.Hover(3)
	game.Hover(3) // already previewed
	game.ClearHover(3)
	game.ClearHover(3) // cleared already

	assert.Equal(t, 1.0, transitionCount(t, registry, "place_preview_token"))
	assert.Equal(t, 1.0, transitionCount(t, registry, "clear_preview_token"))
}
