package domain

// GameStatus is the closed variant describing where the game stands.
// The only implementations are InProgress, Won and Draw.
type GameStatus interface {
	isGameStatus()
}

// InProgress is the initial status; moves are still accepted.
type InProgress struct{}

// Won is terminal. It carries the mover whose placement triggered the win,
// the matched color, and the exact four winning positions in scan order.
type Won struct {
	Winner    Player
	Color     Color
	Positions [4]Position
}

// Draw is terminal; the board is fully placed with no winner.
type Draw struct{}

func (InProgress) isGameStatus() {}
func (Won) isGameStatus()        {}
func (Draw) isGameStatus()       {}
