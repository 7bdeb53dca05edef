// Package render maps core game data onto presentation values: cell colors,
// player labels, and a terminal view of the board. It is a one-way consumer
// of core data and never mutates it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fourline/fourline/pkg/domain"
	"github.com/muesli/termenv"
)

// CellColor maps a cell state to its display color. Empty cells have no
// color; the second return is false for them.
func CellColor(cell domain.CellState) (domain.Color, bool) {
	type result struct {
		color domain.Color
		ok    bool
	}
	r := domain.MatchCell(cell,
		func(domain.Empty) result { return result{} },
		func(p domain.Preview) result { return result{color: p.Color(), ok: true} },
		func(p domain.Placed) result { return result{color: p.Color(), ok: true} },
	)
	return r.color, r.ok
}

// PlayerLabel maps a player to its display label.
func PlayerLabel(p domain.Player) string {
	if p == domain.Player1 {
		return "Player 1"
	}
	return "Player 2"
}

// ColorLabel maps a token color to its display label.
func ColorLabel(c domain.Color) string {
	if c == domain.Red {
		return "Red"
	}
	return "Yellow"
}

// Renderer draws boards for a terminal. Styling degrades gracefully on
// terminals without color support.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{output: termenv.NewOutput(w)}
}

func (r *Renderer) ansi(c domain.Color) termenv.Color {
	if c == domain.Red {
		return r.output.Color("1")
	}
	return r.output.Color("3")
}

// cell renders one cell: a dot for empty, a faint token for a preview, a
// full token for a placed one.
func (r *Renderer) cell(cell domain.CellState) string {
	return domain.MatchCell(cell,
		func(domain.Empty) string {
			return r.output.String("·").Faint().String()
		},
		func(p domain.Preview) string {
			return r.output.String("●").Foreground(r.ansi(p.Color())).Faint().String()
		},
		func(p domain.Placed) string {
			return r.output.String("●").Foreground(r.ansi(p.Color())).String()
		},
	)
}

// Board renders the full grid with a column header and a status line.
func (r *Renderer) Board(state domain.BoardState) string {
	var b strings.Builder
	b.WriteString(" ")
	for col := 0; col < domain.Columns; col++ {
		fmt.Fprintf(&b, " %d", col)
	}
	b.WriteString("\n")
	for row := 0; row < domain.Rows; row++ {
		b.WriteString(" ")
		for col := 0; col < domain.Columns; col++ {
			b.WriteString(" ")
			b.WriteString(r.cell(state.Cell(domain.Position{Row: row, Column: col})))
		}
		b.WriteString("\n")
	}
	b.WriteString(r.statusLine(state))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) statusLine(state domain.BoardState) string {
	switch status := state.Status().(type) {
	case domain.Won:
		return fmt.Sprintf("%s (%s) wins!", PlayerLabel(status.Winner), ColorLabel(status.Color))
	case domain.Draw:
		return "Draw: the board is full."
	default:
		player := state.CurrentPlayer()
		return fmt.Sprintf("%s (%s) to move.", PlayerLabel(player), ColorLabel(state.Strategy()(player)))
	}
}
