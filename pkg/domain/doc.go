/*
Package domain contains the core domain model of the fourline rules engine.

It defines the fundamental entities of the game: the 6x7 grid of positions,
the token lifecycle (Empty, Preview, Placed), the immutable board snapshot,
and the closed set of transitions that advance it. This package is kept pure
and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Position: one of the 42 cells on the fixed 6x7 grid.
  - CellState: the closed token-lifecycle variant held by each cell.
  - BoardState: the immutable whole-board snapshot (cells, current player,
    coloring strategy, game status).
  - Transition: the closed set of moves a caller can submit.
  - GameStatus: in progress, won (with the four winning positions), or draw.
*/
package domain
