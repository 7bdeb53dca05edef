package store

import "github.com/fourline/fourline/pkg/domain"

// Derived streams are read-only live views over the snapshot stream. Each
// one seeds its deduplication memory from the snapshot current at
// subscription time and reports only changes committed afterwards.

// SubscribePlayer invokes fn whenever the current player differs from the
// previously observed one.
func (s *Store) SubscribePlayer(fn func(domain.Player)) CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := s.state.CurrentPlayer()
	return s.addLocked(func(next domain.BoardState) bool {
		player := next.CurrentPlayer()
		if player == last {
			return true
		}
		last = player
		fn(player)
		return true
	})
}

// SubscribeCell invokes fn with the cell's state on every change,
// deduplicated. Placed is terminal, so once a placed value is delivered the
// subscription ends permanently. A subscription on an already placed cell
// never fires. Off-grid positions yield an ended subscription.
func (s *Store) SubscribeCell(pos domain.Position, fn func(domain.CellState)) CancelFunc {
	if !pos.Valid() {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	last := s.state.Cell(pos)
	if _, done := last.(domain.Placed); done {
		return func() {}
	}
	return s.addLocked(func(next domain.BoardState) bool {
		cell := next.Cell(pos)
		if cell == last {
			return true
		}
		last = cell
		fn(cell)
		_, placed := cell.(domain.Placed)
		return !placed
	})
}

// SubscribeColumnFull invokes fn once, the first time the column becomes
// entirely placed, then ends. A subscription on an already full column
// never fires.
func (s *Store) SubscribeColumnFull(column int, fn func(int)) CancelFunc {
	if !domain.ValidColumn(column) {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.ColumnFull(column) {
		return func() {}
	}
	return s.addLocked(func(next domain.BoardState) bool {
		if !next.ColumnFull(column) {
			return true
		}
		fn(column)
		return false
	})
}
