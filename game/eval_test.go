package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateMaterial(t *testing.T) {
	t.Run("terminal boards score exactly one", func(t *testing.T) {
		board := mustBoard(t,
			"rr...",
			"rr.b.",
			"...b.",
			"...b.",
			".....",
		)

		require.Equal(t, 1.0, EvaluateMaterial(board, PieceB))
		require.Equal(t, -1.0, EvaluateMaterial(board, PieceA))
	})

	t.Run("material advantage is positive and bounded", func(t *testing.T) {
		board := mustBoard(t,
			"b.b..",
			".....",
			"..b..",
			".....",
			"r....",
		)

		score := EvaluateMaterial(board, PieceA)
		require.InDelta(t, 0.02, score, 1e-9)
		require.Greater(t, score, -1.0)
		require.Less(t, score, 1.0)

		require.InDelta(t, -0.02, EvaluateMaterial(board, PieceB), 1e-9)
	})

	t.Run("balanced board scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateMaterial(Board{}, PieceA))
		board := mustBoard(t, "b....", ".....", "..r..", ".....", ".....")
		require.Equal(t, 0.0, EvaluateMaterial(board, PieceA))
	})

	t.Run("heuristic never reaches terminal magnitude", func(t *testing.T) {
		var board Board
		board[0][0], board[0][2], board[2][0], board[2][2] = PieceA, PieceA, PieceA, PieceA
		require.False(t, board.IsTerminal())

		score := EvaluateMaterial(board, PieceA)
		require.Less(t, score, 1.0)
		require.Greater(t, score, 0.0)
	})
}
