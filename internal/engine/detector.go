package engine

import "github.com/fourline/fourline/pkg/domain"

// resolveStatus computes the game status after a placement. It scans the
// four lines through the placed cell in priority order (row, column,
// ascending diagonal, descending diagonal); the first line holding four
// consecutive tokens of the placed color wins. With no win, a fully placed
// board is a draw; otherwise the game stays in progress.
func resolveStatus(state domain.BoardState, placed domain.Placed, mover domain.Player) domain.GameStatus {
	pos := placed.Position()
	lines := [][]domain.Position{
		rowLine(pos),
		columnLine(pos),
		ascendingLine(pos),
		descendingLine(pos),
	}
	for _, line := range lines {
		if run, ok := scanLine(state, line, placed.Color()); ok {
			return domain.Won{Winner: mover, Color: placed.Color(), Positions: run}
		}
	}
	if boardFull(state) {
		return domain.Draw{}
	}
	return domain.InProgress{}
}

// scanLine walks the line in order keeping a running count of consecutive
// placed tokens of the target color. The count resets on any other cell and
// the scan stops at the first run of four: the reported positions are the
// last four of that run.
func scanLine(state domain.BoardState, line []domain.Position, color domain.Color) ([4]domain.Position, bool) {
	count := 0
	for i, pos := range line {
		placed, ok := state.Cell(pos).(domain.Placed)
		if !ok || placed.Color() != color {
			count = 0
			continue
		}
		count++
		if count == 4 {
			var run [4]domain.Position
			copy(run[:], line[i-3:i+1])
			return run, true
		}
	}
	return [4]domain.Position{}, false
}

// rowLine is the full row through pos, ordered by increasing column.
func rowLine(pos domain.Position) []domain.Position {
	line := make([]domain.Position, 0, domain.Columns)
	for col := 0; col < domain.Columns; col++ {
		line = append(line, domain.Position{Row: pos.Row, Column: col})
	}
	return line
}

// columnLine is the full column through pos, ordered by increasing row.
func columnLine(pos domain.Position) []domain.Position {
	line := make([]domain.Position, 0, domain.Rows)
	for row := 0; row < domain.Rows; row++ {
		line = append(line, domain.Position{Row: row, Column: pos.Column})
	}
	return line
}

// ascendingLine is the bottom-left to top-right diagonal through pos
// (row + column constant), ordered by increasing column. Diagonals shorter
// than four cells are returned as-is; they can never reach a count of four.
func ascendingLine(pos domain.Position) []domain.Position {
	key := pos.Row + pos.Column
	line := make([]domain.Position, 0, domain.Rows)
	for col := 0; col < domain.Columns; col++ {
		p := domain.Position{Row: key - col, Column: col}
		if p.Valid() {
			line = append(line, p)
		}
	}
	return line
}

// descendingLine is the top-left to bottom-right diagonal through pos
// (row - column constant), ordered by increasing column.
func descendingLine(pos domain.Position) []domain.Position {
	key := pos.Row - pos.Column
	line := make([]domain.Position, 0, domain.Rows)
	for col := 0; col < domain.Columns; col++ {
		p := domain.Position{Row: key + col, Column: col}
		if p.Valid() {
			line = append(line, p)
		}
	}
	return line
}

func boardFull(state domain.BoardState) bool {
	for _, pos := range domain.AllPositions() {
		if _, ok := state.Cell(pos).(domain.Placed); !ok {
			return false
		}
	}
	return true
}
