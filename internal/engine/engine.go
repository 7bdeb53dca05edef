// Package engine implements the pure transition function that advances a
// board snapshot, and the four-in-a-row win detection that feeds it.
package engine

import (
	"fmt"

	"github.com/fourline/fourline/pkg/domain"
)

// Apply advances a board snapshot by one transition. It is pure and total:
// no side effects, and every well-formed input yields a state. Disallowed
// moves (full column, absent preview, finished game) return the state
// unchanged rather than failing.
func Apply(state domain.BoardState, transition domain.Transition) domain.BoardState {
	switch t := transition.(type) {
	case domain.SwitchPlayer:
		return state.WithPlayer(state.CurrentPlayer().Opponent())
	case domain.PlacePreviewToken:
		return placePreview(state, t.Column)
	case domain.ClearPreviewToken:
		return clearPreview(state, t.Column)
	case domain.PlaceToken:
		return placeToken(state, t.Column)
	default:
		// Transition is a closed set; reaching this is a broken invariant.
		panic(fmt.Sprintf("engine: unknown transition %T", transition))
	}
}

// placePreview marks the lowest empty cell of the column with a candidate
// token colored for the current player. Gravity fills from the bottom row
// up, so the scan starts at the highest row index.
func placePreview(state domain.BoardState, column int) domain.BoardState {
	if !state.InProgress() || !domain.ValidColumn(column) {
		return state
	}
	for row := domain.Rows - 1; row >= 0; row-- {
		cell := state.Cell(domain.Position{Row: row, Column: column})
		if empty, ok := cell.(domain.Empty); ok {
			return state.WithCell(empty.Preview(state.CurrentColor()))
		}
	}
	return state
}

// clearPreview reverts the column's preview cell to empty, if one exists.
func clearPreview(state domain.BoardState, column int) domain.BoardState {
	if !state.InProgress() || !domain.ValidColumn(column) {
		return state
	}
	for row := domain.Rows - 1; row >= 0; row-- {
		cell := state.Cell(domain.Position{Row: row, Column: column})
		if preview, ok := cell.(domain.Preview); ok {
			return state.WithCell(preview.Clear())
		}
	}
	return state
}

// placeToken commits the column's preview into a permanent token and
// recomputes the game status seeded with the just-placed cell. Placement
// commits an existing preview; it never fills an empty cell directly.
func placeToken(state domain.BoardState, column int) domain.BoardState {
	if !state.InProgress() {
		return state
	}
	if !domain.ValidColumn(column) {
		return state
	}
	for row := domain.Rows - 1; row >= 0; row-- {
		cell := state.Cell(domain.Position{Row: row, Column: column})
		preview, ok := cell.(domain.Preview)
		if !ok {
			continue
		}
		placed := preview.Place()
		next := state.WithCell(placed)
		return next.WithStatus(resolveStatus(next, placed, state.CurrentPlayer()))
	}
	return state
}
