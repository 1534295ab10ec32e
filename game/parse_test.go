package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyMarkers() [][]string {
	markers := make([][]string, Size)
	for r := range markers {
		markers[r] = []string{" ", " ", " ", " ", " "}
	}
	return markers
}

func TestParseBoard(t *testing.T) {
	t.Run("reads pieces and blanks", func(t *testing.T) {
		markers := emptyMarkers()
		markers[0][0] = "b"
		markers[4][4] = "r"
		markers[2][2] = ""

		board, err := ParseBoard(markers)

		require.NoError(t, err)
		require.Equal(t, PieceA, board[0][0])
		require.Equal(t, PieceB, board[4][4])
		require.Equal(t, Empty, board[2][2])
		require.Equal(t, 2, board.Count())
	})

	t.Run("markers render back", func(t *testing.T) {
		markers := emptyMarkers()
		markers[1][3] = "r"
		board, err := ParseBoard(markers)
		require.NoError(t, err)

		require.Equal(t, markers, board.Markers())
	})

	malformed := []struct {
		name   string
		mutate func([][]string) [][]string
	}{
		{"too few rows", func(m [][]string) [][]string { return m[:4] }},
		{"too many rows", func(m [][]string) [][]string { return append(m, []string{" ", " ", " ", " ", " "}) }},
		{"short row", func(m [][]string) [][]string { m[2] = m[2][:3]; return m }},
		{"unknown marker", func(m [][]string) [][]string { m[3][1] = "x"; return m }},
		{"five pieces of one colour", func(m [][]string) [][]string {
			m[0] = []string{"b", "b", "b", " ", "b"}
			m[4][4] = "b"
			return m
		}},
	}
	for _, tc := range malformed {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.mutate(emptyMarkers()))
			require.ErrorIs(t, err, ErrMalformedBoard)
		})
	}

	t.Run("rejects nil", func(t *testing.T) {
		_, err := ParseBoard(nil)
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}

func TestParseCompact(t *testing.T) {
	t.Run("reads grouped rows", func(t *testing.T) {
		board, err := ParseCompact("b.... .r... ..... ..... ....b")

		require.NoError(t, err)
		require.Equal(t, mustBoard(t, "b....", ".r...", ".....", ".....", "....b"), board)
	})

	t.Run("reads spaces as blanks", func(t *testing.T) {
		board, err := ParseCompact("b    " + " r   " + "     " + "     " + "    b")

		require.NoError(t, err)
		require.Equal(t, mustBoard(t, "b....", ".r...", ".....", ".....", "....b"), board)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseCompact("b....")
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("rejects unknown marker", func(t *testing.T) {
		_, err := ParseCompact("x.... ..... ..... ..... .....")
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}

func TestMoveCoords(t *testing.T) {
	t.Run("drop is a single pair", func(t *testing.T) {
		require.Equal(t, [][2]int{{1, 2}}, NewDrop(1, 2).Coords())
	})

	t.Run("relocation lists destination first", func(t *testing.T) {
		move := NewRelocate(Coord{1, 1}, Coord{2, 2})
		require.Equal(t, [][2]int{{1, 1}, {2, 2}}, move.Coords())

		parsed, err := MoveFromCoords(move.Coords())
		require.NoError(t, err)
		require.Equal(t, move, parsed)
	})

	t.Run("rejects bad shapes", func(t *testing.T) {
		_, err := MoveFromCoords(nil)
		require.ErrorIs(t, err, ErrInvalidMove)
		_, err = MoveFromCoords([][2]int{{0, 5}})
		require.ErrorIs(t, err, ErrInvalidMove)
		_, err = MoveFromCoords([][2]int{{0, 0}, {-1, 0}})
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}
