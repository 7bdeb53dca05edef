package domain

// Board dimensions. The grid is fixed; row 0 is the top row, so gravity
// pulls tokens toward higher row indexes.
const (
	Rows    = 6
	Columns = 7
	Cells   = Rows * Columns
)

// Position identifies one cell on the grid.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Valid reports whether the position lies on the grid.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Column >= 0 && p.Column < Columns
}

// ValidColumn reports whether c is a playable column index.
func ValidColumn(c int) bool {
	return c >= 0 && c < Columns
}

// AllPositions returns the 42 grid positions in row-major order.
func AllPositions() []Position {
	positions := make([]Position, 0, Cells)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			positions = append(positions, Position{Row: row, Column: col})
		}
	}
	return positions
}
