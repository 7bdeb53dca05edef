package domain

import "fmt"

// Color is the token color a player plays with.
type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
)

// Player identifies one of the two participants.
type Player string

const (
	Player1 Player = "player1"
	Player2 Player = "player2"
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// ColoringStrategy maps a player to the color they play. It is fixed at
// game creation and must be total over both players.
type ColoringStrategy func(Player) Color

// Player1Red assigns red to player one and yellow to player two.
func Player1Red(p Player) Color {
	if p == Player1 {
		return Red
	}
	return Yellow
}

// Player1Yellow assigns yellow to player one and red to player two.
func Player1Yellow(p Player) Color {
	if p == Player1 {
		return Yellow
	}
	return Red
}

// Named strategies recognized by persistence snapshots.
const (
	StrategyPlayer1Red    = "player1-red"
	StrategyPlayer1Yellow = "player1-yellow"
)

// StrategyName returns the snapshot name of a strategy by probing it.
// Any total strategy resolves to one of the two named ones, since there
// are only two ways to assign two colors to two players.
func StrategyName(s ColoringStrategy) string {
	if s(Player1) == Red {
		return StrategyPlayer1Red
	}
	return StrategyPlayer1Yellow
}

// StrategyByName resolves a snapshot strategy name.
func StrategyByName(name string) (ColoringStrategy, error) {
	switch name {
	case StrategyPlayer1Red:
		return Player1Red, nil
	case StrategyPlayer1Yellow:
		return Player1Yellow, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
