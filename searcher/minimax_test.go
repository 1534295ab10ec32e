package searcher

import (
	"testing"
	"teeko/game"

	"github.com/stretchr/testify/require"
)

// board builds a position from five rows of 'b', 'r' and '.' characters.
func board(t *testing.T, rows ...string) game.Board {
	t.Helper()
	var b game.Board
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'b':
				b[r][c] = game.PieceA
			case 'r':
				b[r][c] = game.PieceB
			}
		}
	}
	return b
}

func TestMinimaxSearch(t *testing.T) {
	t.Run("first placement on an empty board is the first cell scanned", func(t *testing.T) {
		// Every drop is answered by a drop, leaving material level, so all
		// root moves score 0 and the earliest one is kept.
		result, err := NewMinimax().Search(game.Board{}, game.PieceA)

		require.NoError(t, err)
		require.Equal(t, game.NewDrop(0, 0), result.Move)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run("completes a box during placement", func(t *testing.T) {
		b := board(t,
			"bb...",
			"b....",
			"....r",
			".....",
			"r.r..",
		)

		result, err := NewMinimax().Search(b, game.PieceA)

		require.NoError(t, err)
		require.Equal(t, game.NewDrop(1, 1), result.Move)
		require.Equal(t, WIN, result.Score)
	})

	t.Run("completes a box by relocation", func(t *testing.T) {
		b := board(t,
			"bb...",
			"b....",
			"..b.r",
			"....r",
			"r.r..",
		)
		require.Equal(t, game.MovementPhase, b.Phase())

		result, err := NewMinimax().Search(b, game.PieceA)

		require.NoError(t, err)
		require.Equal(t, game.NewRelocate(game.Coord{Row: 1, Col: 1}, game.Coord{Row: 2, Col: 2}), result.Move)
		require.Equal(t, WIN, result.Score)
	})

	t.Run("blocks the opponent's box", func(t *testing.T) {
		b := board(t,
			"rr...",
			"r....",
			".....",
			".....",
			"..b.b",
		)

		result, err := NewMinimax().Search(b, game.PieceA)

		require.NoError(t, err)
		require.Equal(t, game.NewDrop(1, 1), result.Move)
		require.Greater(t, result.Score, LOSS)
	})

	t.Run("plays for either colour", func(t *testing.T) {
		b := board(t,
			"rr...",
			"r....",
			".....",
			".....",
			"..b.b",
		)

		result, err := NewMinimax().Search(b, game.PieceB)

		require.NoError(t, err)
		require.Equal(t, game.NewDrop(1, 1), result.Move)
		require.Equal(t, WIN, result.Score)
	})

	t.Run("full board has no legal moves", func(t *testing.T) {
		b := board(t, "brbrb", "rbrbr", "rbrbr", "brbrb", "rbrbr")

		_, err := NewMinimax().Search(b, game.PieceA)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("repeated searches agree and leave the board untouched", func(t *testing.T) {
		b := board(t,
			"b.r..",
			".b...",
			"..r..",
			".....",
			".....",
		)
		before := b
		m := NewMinimax()

		first, err := m.Search(b, game.PieceA)
		require.NoError(t, err)
		second, err := m.Search(b, game.PieceA)
		require.NoError(t, err)

		require.Equal(t, first.Move, second.Move)
		require.Equal(t, first.Score, second.Score)
		require.Equal(t, before, b)
	})

	t.Run("panics without a piece", func(t *testing.T) {
		require.Panics(t, func() {
			NewMinimax().Search(game.Board{}, game.Empty)
		})
	})
}

func TestMinimaxOptions(t *testing.T) {
	t.Run("defaults to two plies and phase-aware recursion", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, 2, m.Depth())
		require.True(t, m.PhaseAware())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		require.Equal(t, 2, NewMinimax(WithDepth(0)).Depth())
		require.Equal(t, 3, NewMinimax(WithDepth(3)).Depth())
	})

	t.Run("custom evaluation drives the choice", func(t *testing.T) {
		corner := func(b game.Board, perspective game.Cell) float64 {
			if b[4][4] == perspective {
				return 0.5
			}
			return 0
		}

		result, err := NewMinimax(WithEvaluationFn(corner)).Search(game.Board{}, game.PieceA)

		require.NoError(t, err)
		require.Equal(t, game.NewDrop(4, 4), result.Move)
	})

	t.Run("metrics count every node of the tree", func(t *testing.T) {
		result, err := NewMinimax(WithMetrics()).Search(game.Board{}, game.PieceA)

		require.NoError(t, err)
		// root + 25 replies + 25*24 leaves
		require.Equal(t, 626, result.Metric.Nodes)
		require.Equal(t, 600, result.Metric.Leaves)
		require.Equal(t, 2, result.Metric.Depth)
		require.True(t, result.Metric.PhaseAware)
	})

	t.Run("metrics are empty unless requested", func(t *testing.T) {
		result, err := NewMinimax().Search(game.Board{}, game.PieceA)

		require.NoError(t, err)
		require.Zero(t, result.Metric.Nodes)
	})

	t.Run("phase-blind recursion finds no replies during placement", func(t *testing.T) {
		m := NewMinimax(WithPhaseBlindRecursion(), WithMetrics())

		result, err := m.Search(game.Board{}, game.PieceA)

		require.NoError(t, err)
		require.False(t, m.PhaseAware())
		// The opponent has no piece to relocate, so each reply node is a leaf
		// scored with our extra piece on the board.
		require.Equal(t, game.NewDrop(0, 0), result.Move)
		require.InDelta(t, 0.01, result.Score, 1e-9)
		require.Equal(t, 26, result.Metric.Nodes)
		require.Equal(t, 25, result.Metric.Leaves)
	})
}
