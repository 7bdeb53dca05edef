/*
Package store serializes access to a single board snapshot and broadcasts
every committed change to subscribers.

The store is a passive, synchronously invoked object: it owns no goroutines
and delivers notifications inside its own critical section, so subscribers
observe snapshots in exactly the order they were committed. A subscriber
callback must not call back into the store (and must not cancel its own
subscription) from within a notification; doing so deadlocks on the store
mutex.
*/
package store

import (
	"log/slog"
	"sync"

	"github.com/fourline/fourline/internal/engine"
	"github.com/fourline/fourline/internal/logging"
	"github.com/fourline/fourline/pkg/domain"
)

// CancelFunc removes a subscription. Safe to call more than once, but never
// from inside a notification callback.
type CancelFunc func()

// subscription notifiers return false to end the subscription after the
// current delivery. This lets derived streams terminate themselves without
// re-acquiring the store mutex.
type subscription struct {
	id     int
	notify func(domain.BoardState) bool
}

// Store is a mutex-guarded holder of the current board snapshot.
type Store struct {
	mu     sync.Mutex
	state  domain.BoardState
	subs   []*subscription
	nextID int
	logger *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger configures a logger for committed transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store holding the given initial snapshot.
func New(initial domain.BoardState, opts ...Option) *Store {
	s := &Store{
		state:  initial,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. Safe to call concurrently with updates.
func (s *Store) State() domain.BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies one transition under exclusive access, replaces the
// snapshot and publishes it to all subscribers.
func (s *Store) Update(transition domain.Transition) {
	s.UpdateBatch(transition)
}

// UpdateBatch applies the transitions in order inside one critical section
// and publishes only the final snapshot. Intermediate snapshots produced
// mid-batch are never observable. An empty batch publishes nothing.
func (s *Store) UpdateBatch(transitions ...domain.Transition) {
	if len(transitions) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(transitions)
	s.publishLocked()
}

// UpdateFunc builds a batch from the current snapshot and applies it, all
// inside one critical section. It lets callers make the batch conditional on
// the state they are about to change without racing other writers. A nil or
// empty batch leaves the snapshot untouched and publishes nothing.
func (s *Store) UpdateFunc(fn func(domain.BoardState) []domain.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	transitions := fn(s.state)
	if len(transitions) == 0 {
		return
	}
	s.applyLocked(transitions)
	s.publishLocked()
}

// Reset replaces the snapshot with a fresh board lineage (new game or a
// restored one) and publishes it. Subscriptions survive the reset; cell and
// column streams that already ended stay ended.
func (s *Store) Reset(state domain.BoardState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.logger.Debug("board reset", "player", string(state.CurrentPlayer()))
	s.publishLocked()
}

// Subscribe registers a callback invoked with every snapshot committed after
// registration. Delivery is synchronous and ordering-preserving.
func (s *Store) Subscribe(fn func(domain.BoardState)) CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(func(next domain.BoardState) bool {
		fn(next)
		return true
	})
}

func (s *Store) applyLocked(transitions []domain.Transition) {
	for _, t := range transitions {
		s.state = engine.Apply(s.state, t)
		s.logger.Debug("transition applied",
			"transition", domain.TransitionName(t),
			"player", string(s.state.CurrentPlayer()),
		)
	}
}

func (s *Store) publishLocked() {
	snapshot := s.state
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.notify(snapshot) {
			kept = append(kept, sub)
		}
	}
	// Zero the tail so ended subscriptions are not kept alive.
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
}

func (s *Store) addLocked(notify func(domain.BoardState) bool) CancelFunc {
	sub := &subscription{id: s.nextID, notify: notify}
	s.nextID++
	s.subs = append(s.subs, sub)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subs {
			if candidate.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
