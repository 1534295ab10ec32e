package searcher

import (
	"teeko/experiments/metrics"
	"teeko/game"
)

// Scores of terminal positions
const WIN = 1.0
const LOSS = -WIN

// Result of a search from the root position.
type Result struct {
	Move   game.Move
	Score  float64
	Metric metrics.SearchMetric
}

type Searcher interface {
	// Search returns the best move for own on board, searching as if own is
	// to play.
	Search(board game.Board, own game.Cell) (Result, error)
}
