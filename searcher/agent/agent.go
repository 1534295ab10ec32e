package agent

import (
	"teeko/experiments/metrics"
	"teeko/game"
)

type Agent interface {
	// Piece returns the colour the agent plays
	Piece() game.Cell
	// FindMove returns the agent's move for board and performance metrics (if collected) from the search
	FindMove(board game.Board) (game.Move, metrics.SearchMetric, error)
}
