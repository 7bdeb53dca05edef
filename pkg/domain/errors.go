package domain

import "errors"

// ErrGameNotFound is returned when a game ID cannot be found in a snapshot store.
var ErrGameNotFound = errors.New("game not found")

// ErrUnknownStrategy is returned when a snapshot names a coloring strategy
// outside the recognized set.
var ErrUnknownStrategy = errors.New("unknown coloring strategy")

// ErrMalformedSnapshot is returned when a restored snapshot does not describe
// all 42 cells of the grid exactly once.
var ErrMalformedSnapshot = errors.New("malformed board snapshot")
