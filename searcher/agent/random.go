package agent

import (
	"fmt"
	"slices"
	"teeko/experiments/metrics"
	"teeko/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	piece game.Cell
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random
// legal move.
func NewRandomAgent(piece game.Cell, seed uint64) Agent {
	if !piece.IsPiece() {
		panic("random agent needs a piece")
	}
	return &randomAgent{piece: piece, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Piece() game.Cell {
	return a.piece
}

func (a *randomAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := slices.Collect(board.LegalMoves(board.Phase(), a.piece))
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %q cannot move", game.ErrNoLegalMoves, a.piece.Marker())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
