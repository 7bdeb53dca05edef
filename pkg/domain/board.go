package domain

import "fmt"

// BoardState is the immutable whole-board snapshot. Its cell mapping holds
// exactly one entry per grid position for the lifetime of a board lineage;
// every mutation produces a fresh copy, so snapshots can be shared freely
// across goroutines.
type BoardState struct {
	cells    map[Position]CellState
	player   Player
	strategy ColoringStrategy
	status   GameStatus
}

// NewBoard creates a clean board: all cells empty, player one to move,
// game in progress.
func NewBoard(strategy ColoringStrategy) BoardState {
	cells := make(map[Position]CellState, Cells)
	for _, pos := range AllPositions() {
		cells[pos] = NewEmpty(pos)
	}
	return BoardState{
		cells:    cells,
		player:   Player1,
		strategy: strategy,
		status:   InProgress{},
	}
}

// Restore rebuilds a board from an externally persisted tuple. The cell
// mapping must describe every grid position exactly once; positions off the
// grid or missing entries yield ErrMalformedSnapshot.
func Restore(cells map[Position]CellState, player Player, strategy ColoringStrategy, status GameStatus) (BoardState, error) {
	if len(cells) != Cells {
		return BoardState{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedSnapshot, len(cells), Cells)
	}
	copied := make(map[Position]CellState, Cells)
	for _, pos := range AllPositions() {
		cell, ok := cells[pos]
		if !ok {
			return BoardState{}, fmt.Errorf("%w: missing cell at %v", ErrMalformedSnapshot, pos)
		}
		if cell.Position() != pos {
			return BoardState{}, fmt.Errorf("%w: cell at %v reports position %v", ErrMalformedSnapshot, pos, cell.Position())
		}
		copied[pos] = cell
	}
	return BoardState{
		cells:    copied,
		player:   player,
		strategy: strategy,
		status:   status,
	}, nil
}

// Cell returns the state of the cell at pos. It panics if pos is off the
// grid, since every reachable position is always present.
func (b BoardState) Cell(pos Position) CellState {
	cell, ok := b.cells[pos]
	if !ok {
		panic(fmt.Sprintf("domain: position %v off the grid", pos))
	}
	return cell
}

// Cells returns a copy of the full cell mapping.
func (b BoardState) Cells() map[Position]CellState {
	copied := make(map[Position]CellState, len(b.cells))
	for pos, cell := range b.cells {
		copied[pos] = cell
	}
	return copied
}

// CurrentPlayer returns the player to move.
func (b BoardState) CurrentPlayer() Player { return b.player }

// Strategy returns the coloring strategy fixed at game creation.
func (b BoardState) Strategy() ColoringStrategy { return b.strategy }

// CurrentColor returns the color the current player plays with.
func (b BoardState) CurrentColor() Color { return b.strategy(b.player) }

// Status returns the current game status.
func (b BoardState) Status() GameStatus { return b.status }

// InProgress reports whether moves are still accepted.
func (b BoardState) InProgress() bool {
	_, ok := b.status.(InProgress)
	return ok
}

// ColumnFull reports whether every cell of the column is a placed token.
func (b BoardState) ColumnFull(column int) bool {
	if !ValidColumn(column) {
		return false
	}
	for row := 0; row < Rows; row++ {
		if _, ok := b.Cell(Position{Row: row, Column: column}).(Placed); !ok {
			return false
		}
	}
	return true
}

// ColumnOpen reports whether the column can still receive a token, either
// into an empty cell or by committing its preview.
func (b BoardState) ColumnOpen(column int) bool {
	if !ValidColumn(column) {
		return false
	}
	for row := 0; row < Rows; row++ {
		switch b.Cell(Position{Row: row, Column: column}).(type) {
		case Empty, Preview:
			return true
		}
	}
	return false
}

// ColumnPreview returns the column's preview cell, if one exists. When the
// column holds more than one preview the bottom-most wins, matching the cell
// the next placement would commit.
func (b BoardState) ColumnPreview(column int) (Preview, bool) {
	if !ValidColumn(column) {
		return Preview{}, false
	}
	for row := Rows - 1; row >= 0; row-- {
		if preview, ok := b.Cell(Position{Row: row, Column: column}).(Preview); ok {
			return preview, true
		}
	}
	return Preview{}, false
}

// WithCell returns a copy of the board with one cell replaced. The copy is
// full but cheap: the mapping holds 42 entries.
func (b BoardState) WithCell(cell CellState) BoardState {
	pos := cell.Position()
	if !pos.Valid() {
		panic(fmt.Sprintf("domain: cell position %v off the grid", pos))
	}
	cells := make(map[Position]CellState, len(b.cells))
	for p, c := range b.cells {
		cells[p] = c
	}
	cells[pos] = cell
	next := b
	next.cells = cells
	return next
}

// WithPlayer returns a copy of the board with the current player replaced.
func (b BoardState) WithPlayer(player Player) BoardState {
	next := b
	next.player = player
	return next
}

// WithStatus returns a copy of the board with the game status replaced.
func (b BoardState) WithStatus(status GameStatus) BoardState {
	next := b
	next.status = status
	return next
}
