package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustBoard builds a board from five rows of 'b', 'r' and '.' characters.
func mustBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Size, "board needs %d rows", Size)
	var board Board
	for r, row := range rows {
		require.Len(t, row, Size, "row %d needs %d cells", r, Size)
		for c, ch := range row {
			switch ch {
			case 'b':
				board[r][c] = PieceA
			case 'r':
				board[r][c] = PieceB
			case '.':
			default:
				t.Fatalf("unknown test marker %q", ch)
			}
		}
	}
	return board
}

func collect(board Board, phase Phase, piece Cell) []Move {
	return slices.Collect(board.LegalMoves(phase, piece))
}
