package domain

// Transition is the closed set of moves a caller can submit to advance a
// board. The only implementations are PlaceToken, PlacePreviewToken,
// ClearPreviewToken and SwitchPlayer.
type Transition interface {
	isTransition()
}

// PlaceToken commits the column's preview token into a permanent one.
// It is a no-op when the game has ended or the column holds no preview.
type PlaceToken struct {
	Column int
}

// PlacePreviewToken drops a candidate token into the lowest empty cell of
// the column. It is a no-op when the column is full.
type PlacePreviewToken struct {
	Column int
}

// ClearPreviewToken reverts the column's preview cell to empty, if any.
type ClearPreviewToken struct {
	Column int
}

// SwitchPlayer toggles the current player. Cells and status are untouched.
type SwitchPlayer struct{}

func (PlaceToken) isTransition()        {}
func (PlacePreviewToken) isTransition() {}
func (ClearPreviewToken) isTransition() {}
func (SwitchPlayer) isTransition()      {}

// TransitionName returns a stable label for a transition, used for logging
// and metrics.
func TransitionName(t Transition) string {
	switch t.(type) {
	case PlaceToken:
		return "place_token"
	case PlacePreviewToken:
		return "place_preview_token"
	case ClearPreviewToken:
		return "clear_preview_token"
	case SwitchPlayer:
		return "switch_player"
	default:
		return "unknown"
	}
}
