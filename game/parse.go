package game

import (
	"fmt"
	"strings"
)

// ParseCell maps a wire marker to a cell. The empty string is accepted as
// a blank because the browser client initialises its cells with "".
func ParseCell(marker string) (Cell, bool) {
	switch marker {
	case BlankMarker, "":
		return Empty, true
	case PieceAMarker:
		return PieceA, true
	case PieceBMarker:
		return PieceB, true
	default:
		return Empty, false
	}
}

// ParseBoard converts a 5x5 grid of markers into a Board.
func ParseBoard(markers [][]string) (Board, error) {
	var board Board
	if len(markers) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, Size, len(markers))
	}
	for r, row := range markers {
		if len(row) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedBoard, r, len(row), Size)
		}
		for c, marker := range row {
			cell, ok := ParseCell(marker)
			if !ok {
				return board, fmt.Errorf("%w: unknown marker %q at (%d,%d)", ErrMalformedBoard, marker, r, c)
			}
			board[r][c] = cell
		}
	}
	if err := board.Validate(); err != nil {
		return Board{}, err
	}
	return board, nil
}

// ParseCompact reads a board written as 25 row-major characters where 'b'
// and 'r' are pieces and '.', '_' or ' ' are blanks. Whitespace-separated
// row groups such as "b.... ....." are accepted.
func ParseCompact(s string) (Board, error) {
	var board Board
	var cells []byte
	for _, field := range strings.Fields(strings.NewReplacer("/", " ", ",", " ").Replace(s)) {
		cells = append(cells, field...)
	}
	if len(cells) != Size*Size {
		// Spaces may have been used as blanks
		cells = []byte(s)
	}
	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformedBoard, Size*Size, len(cells))
	}
	for i, ch := range cells {
		var cell Cell
		switch ch {
		case '.', '_', ' ':
			cell = Empty
		case 'b':
			cell = PieceA
		case 'r':
			cell = PieceB
		default:
			return board, fmt.Errorf("%w: unknown marker %q at (%d,%d)", ErrMalformedBoard, ch, i/Size, i%Size)
		}
		board[i/Size][i%Size] = cell
	}
	if err := board.Validate(); err != nil {
		return Board{}, err
	}
	return board, nil
}

// Validate rejects boards on which a side has more pieces than it can drop.
func (b Board) Validate() error {
	for _, piece := range []Cell{PieceA, PieceB} {
		if n := b.CountOf(piece); n > PiecesPerSide {
			return fmt.Errorf("%w: %d %q pieces, at most %d allowed", ErrMalformedBoard, n, piece.Marker(), PiecesPerSide)
		}
	}
	return nil
}

// Markers renders the board in the wire format accepted by ParseBoard.
func (b Board) Markers() [][]string {
	markers := make([][]string, Size)
	for r, row := range b {
		markers[r] = make([]string, Size)
		for c, cell := range row {
			markers[r][c] = cell.Marker()
		}
	}
	return markers
}
