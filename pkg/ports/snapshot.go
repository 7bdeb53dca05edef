package ports

import (
	"fmt"

	"github.com/fourline/fourline/pkg/domain"
)

// Cell state labels used in snapshots.
const (
	CellEmpty   = "empty"
	CellPreview = "preview"
	CellPlaced  = "placed"
)

// Game status labels used in snapshots.
const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

// CellSnapshot is the serializable form of one cell.
type CellSnapshot struct {
	Row    int    `json:"row" yaml:"row"`
	Column int    `json:"column" yaml:"column"`
	State  string `json:"state" yaml:"state"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
}

// WinSnapshot is the serializable form of a won status.
type WinSnapshot struct {
	Winner    string            `json:"winner" yaml:"winner"`
	Color     string            `json:"color" yaml:"color"`
	Positions []domain.Position `json:"positions" yaml:"positions"`
}

// Snapshot is the 4-tuple a persistence collaborator stores and restores:
// the cell mapping, the current player, the coloring strategy (by name) and
// the game status.
type Snapshot struct {
	Cells    []CellSnapshot `json:"cells" yaml:"cells"`
	Player   string         `json:"current_player" yaml:"current_player"`
	Strategy string         `json:"strategy" yaml:"strategy"`
	Status   string         `json:"status" yaml:"status"`
	Win      *WinSnapshot   `json:"win,omitempty" yaml:"win,omitempty"`
}

// FromBoard captures a board snapshot into its serializable form. Cells are
// listed in row-major order.
func FromBoard(board domain.BoardState) Snapshot {
	cells := make([]CellSnapshot, 0, domain.Cells)
	for _, pos := range domain.AllPositions() {
		cells = append(cells, domain.MatchCell(board.Cell(pos),
			func(domain.Empty) CellSnapshot {
				return CellSnapshot{Row: pos.Row, Column: pos.Column, State: CellEmpty}
			},
			func(p domain.Preview) CellSnapshot {
				return CellSnapshot{Row: pos.Row, Column: pos.Column, State: CellPreview, Color: string(p.Color())}
			},
			func(p domain.Placed) CellSnapshot {
				return CellSnapshot{Row: pos.Row, Column: pos.Column, State: CellPlaced, Color: string(p.Color())}
			},
		))
	}
	snap := Snapshot{
		Cells:    cells,
		Player:   string(board.CurrentPlayer()),
		Strategy: domain.StrategyName(board.Strategy()),
		Status:   StatusInProgress,
	}
	switch status := board.Status().(type) {
	case domain.InProgress:
	case domain.Draw:
		snap.Status = StatusDraw
	case domain.Won:
		snap.Status = StatusWon
		snap.Win = &WinSnapshot{
			Winner:    string(status.Winner),
			Color:     string(status.Color),
			Positions: status.Positions[:],
		}
	}
	return snap
}

// Board rebuilds a board from its serializable form. Malformed snapshots
// (wrong cell count, unknown labels, incomplete win data) are rejected with
// an error wrapping domain.ErrMalformedSnapshot or domain.ErrUnknownStrategy.
func (s Snapshot) Board() (domain.BoardState, error) {
	strategy, err := domain.StrategyByName(s.Strategy)
	if err != nil {
		return domain.BoardState{}, err
	}
	player, err := parsePlayer(s.Player)
	if err != nil {
		return domain.BoardState{}, err
	}
	cells := make(map[domain.Position]domain.CellState, domain.Cells)
	for _, c := range s.Cells {
		pos := domain.Position{Row: c.Row, Column: c.Column}
		cell, err := c.cellState(pos)
		if err != nil {
			return domain.BoardState{}, err
		}
		if _, dup := cells[pos]; dup {
			return domain.BoardState{}, fmt.Errorf("%w: duplicate cell at %v", domain.ErrMalformedSnapshot, pos)
		}
		cells[pos] = cell
	}
	status, err := s.gameStatus()
	if err != nil {
		return domain.BoardState{}, err
	}
	return domain.Restore(cells, player, strategy, status)
}

func (c CellSnapshot) cellState(pos domain.Position) (domain.CellState, error) {
	switch c.State {
	case CellEmpty:
		return domain.NewEmpty(pos), nil
	case CellPreview:
		color, err := parseColor(c.Color)
		if err != nil {
			return nil, err
		}
		return domain.NewEmpty(pos).Preview(color), nil
	case CellPlaced:
		color, err := parseColor(c.Color)
		if err != nil {
			return nil, err
		}
		return domain.NewEmpty(pos).Preview(color).Place(), nil
	default:
		return nil, fmt.Errorf("%w: unknown cell state %q", domain.ErrMalformedSnapshot, c.State)
	}
}

func (s Snapshot) gameStatus() (domain.GameStatus, error) {
	switch s.Status {
	case StatusInProgress:
		return domain.InProgress{}, nil
	case StatusDraw:
		return domain.Draw{}, nil
	case StatusWon:
		if s.Win == nil || len(s.Win.Positions) != 4 {
			return nil, fmt.Errorf("%w: won status requires exactly 4 winning positions", domain.ErrMalformedSnapshot)
		}
		winner, err := parsePlayer(s.Win.Winner)
		if err != nil {
			return nil, err
		}
		color, err := parseColor(s.Win.Color)
		if err != nil {
			return nil, err
		}
		var positions [4]domain.Position
		copy(positions[:], s.Win.Positions)
		return domain.Won{Winner: winner, Color: color, Positions: positions}, nil
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrMalformedSnapshot, s.Status)
	}
}

func parsePlayer(raw string) (domain.Player, error) {
	switch domain.Player(raw) {
	case domain.Player1, domain.Player2:
		return domain.Player(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown player %q", domain.ErrMalformedSnapshot, raw)
	}
}

func parseColor(raw string) (domain.Color, error) {
	switch domain.Color(raw) {
	case domain.Red, domain.Yellow:
		return domain.Color(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown color %q", domain.ErrMalformedSnapshot, raw)
	}
}
