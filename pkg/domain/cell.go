package domain

import "fmt"

// CellState is the closed token-lifecycle variant held by each cell.
// The only implementations are Empty, Preview and Placed; the constructors
// below enforce the legal transitions Empty -> Preview -> Placed and
// Preview -> Empty. Placed is terminal.
type CellState interface {
	// Position returns the grid position this cell state belongs to.
	Position() Position

	isCellState()
}

// Empty is a cell with no permanent color.
type Empty struct {
	pos Position
}

// Preview is a transient hover marker, not yet committed.
type Preview struct {
	pos   Position
	color Color
}

// Placed is a committed token. Once a cell is Placed it never changes.
type Placed struct {
	pos   Position
	color Color
}

func (e Empty) isCellState()   {}
func (p Preview) isCellState() {}
func (p Placed) isCellState()  {}

// NewEmpty creates the initial state for a cell.
func NewEmpty(pos Position) Empty {
	return Empty{pos: pos}
}

// Position returns the cell position.
func (e Empty) Position() Position { return e.pos }

// Preview marks the empty cell with a candidate token of the given color.
func (e Empty) Preview(color Color) Preview {
	return Preview{pos: e.pos, color: color}
}

// Position returns the cell position.
func (p Preview) Position() Position { return p.pos }

// Color returns the candidate token color.
func (p Preview) Color() Color { return p.color }

// Clear reverts the preview back to an empty cell.
func (p Preview) Clear() Empty {
	return Empty{pos: p.pos}
}

// Place commits the preview into a permanent token of the same color.
func (p Preview) Place() Placed {
	return Placed{pos: p.pos, color: p.color}
}

// Position returns the cell position.
func (p Placed) Position() Position { return p.pos }

// Color returns the committed token color.
func (p Placed) Color() Color { return p.color }

// MatchCell dispatches on the three cell-state variants. Every handler is a
// required parameter, so call sites cannot silently skip a variant when the
// lifecycle grows.
func MatchCell[T any](cell CellState, onEmpty func(Empty) T, onPreview func(Preview) T, onPlaced func(Placed) T) T {
	switch c := cell.(type) {
	case Empty:
		return onEmpty(c)
	case Preview:
		return onPreview(c)
	case Placed:
		return onPlaced(c)
	default:
		// CellState is a closed set; reaching this is a broken invariant,
		// not a recoverable condition.
		panic(fmt.Sprintf("domain: unknown cell state %T", cell))
	}
}
