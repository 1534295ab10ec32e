package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinner(t *testing.T) {
	patterns := []struct {
		name string
		rows []string
	}{
		{"row", []string{".....", ".bbbb", ".....", ".....", "....."}},
		{"row from first column", []string{".....", ".....", ".....", ".....", "bbbb."}},
		{"column", []string{"....b", "....b", "....b", "....b", "....."}},
		{"column from second row", []string{".....", "b....", "b....", "b....", "b...."}},
		{"descending diagonal", []string{".....", ".b...", "..b..", "...b.", "....b"}},
		{"descending diagonal from corner", []string{"b....", ".b...", "..b..", "...b.", "....."}},
		{"ascending diagonal", []string{"...b.", "..b..", ".b...", "b....", "....."}},
		{"ascending diagonal from last column", []string{".....", "....b", "...b.", "..b..", ".b..."}},
		{"box", []string{".....", ".....", ".....", "...bb", "...bb"}},
		{"box in the centre", []string{".....", ".bb..", ".bb..", ".....", "....."}},
	}

	for _, tc := range patterns {
		t.Run(tc.name+" wins for its owner", func(t *testing.T) {
			board := mustBoard(t, tc.rows...)

			require.Equal(t, PieceA, board.Winner())
			require.Equal(t, Win, board.Outcome(PieceA))
			require.Equal(t, Loss, board.Outcome(PieceB))
			require.True(t, board.IsTerminal())
		})
	}

	t.Run("empty board has no result", func(t *testing.T) {
		require.Equal(t, NoResult, Board{}.Outcome(PieceA))
		require.False(t, Board{}.IsTerminal())
	})

	broken := []struct {
		name string
		rows []string
	}{
		{"row with a gap", []string{"bb.bb", ".....", ".....", ".....", "....."}},
		{"mixed row", []string{"bbbr.", ".....", ".....", ".....", "....."}},
		{"column of three", []string{"....r", "....r", "....r", ".....", "....."}},
		{"broken diagonal", []string{"b....", ".b...", "..r..", "...b.", "....."}},
		{"broken anti-diagonal", []string{"....b", "...b.", "..b..", ".....", "b...."}},
		{"wrapped row", []string{"...bb", "bb...", ".....", ".....", "....."}},
		{"L shape", []string{"bb...", "b....", "b....", ".....", "....."}},
		{"mixed box", []string{"br...", "bb...", ".....", ".....", "....."}},
		{"full mixed board", []string{"brbrb", "rbrbr", "rbrbr", "brbrb", "rbrbr"}},
	}
	for _, tc := range broken {
		t.Run(tc.name+" has no result", func(t *testing.T) {
			board := mustBoard(t, tc.rows...)

			require.Equal(t, Empty, board.Winner())
			require.Equal(t, NoResult, board.Outcome(PieceA))
			require.Equal(t, NoResult, board.Outcome(PieceB))
		})
	}

	t.Run("rows are scanned before boxes", func(t *testing.T) {
		board := mustBoard(t,
			"bb...",
			"bb...",
			".....",
			".....",
			".rrrr",
		)

		require.Equal(t, PieceB, board.Winner())
	})
}
