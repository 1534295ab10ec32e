package game

import (
	"fmt"
	"strings"
)

// Board is a row-major 5x5 grid. It is a value type: every operation that
// changes the position returns a new Board and leaves the receiver as is.
type Board [Size][Size]Cell

func (b Board) At(c Coord) Cell {
	return b[c.Row][c.Col]
}

// Count returns the number of pieces of either colour on the board.
func (b Board) Count() int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// CountOf returns the number of cells holding piece.
func (b Board) CountOf(piece Cell) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == piece {
				n++
			}
		}
	}
	return n
}

// Phase is placement while fewer than 8 pieces are on the board.
func (b Board) Phase() Phase {
	if b.Count() < MovementThreshold {
		return PlacementPhase
	}
	return MovementPhase
}

// Play applies a move generated by LegalMoves without checking it.
func (b Board) Play(move Move, piece Cell) Board {
	next := b
	switch move.Kind {
	case Drop:
		next[move.To.Row][move.To.Col] = piece
	case Relocate:
		next[move.To.Row][move.To.Col] = piece
		next[move.From.Row][move.From.Col] = Empty
	default:
		panic("unexpected move kind")
	}
	return next
}

// Apply checks move against the rules for piece and returns the resulting
// board. The receiver is never modified.
func (b Board) Apply(move Move, piece Cell) (Board, error) {
	if !piece.IsPiece() {
		return b, fmt.Errorf("%w: %q is not a piece", ErrInvalidMove, piece.Marker())
	}
	if !move.To.InBounds() {
		return b, fmt.Errorf("%w: destination %v out of range", ErrInvalidMove, move.To)
	}
	if b.At(move.To) != Empty {
		return b, fmt.Errorf("%w: destination %v is occupied", ErrInvalidMove, move.To)
	}

	phase := b.Phase()
	switch move.Kind {
	case Drop:
		if phase != PlacementPhase {
			return b, fmt.Errorf("%w: drop %v during %s phase", ErrInvalidMove, move.To, phase)
		}
		if b.CountOf(piece) >= PiecesPerSide {
			return b, fmt.Errorf("%w: %q has no pieces left to drop", ErrInvalidMove, piece.Marker())
		}
	case Relocate:
		if phase != MovementPhase {
			return b, fmt.Errorf("%w: relocation %v during %s phase", ErrInvalidMove, move, phase)
		}
		if !move.From.InBounds() {
			return b, fmt.Errorf("%w: source %v out of range", ErrInvalidMove, move.From)
		}
		if b.At(move.From) != piece {
			return b, fmt.Errorf("%w: source %v does not hold %q", ErrInvalidMove, move.From, piece.Marker())
		}
		if !move.From.Adjacent(move.To) {
			return b, fmt.Errorf("%w: %v is not adjacent to %v", ErrInvalidMove, move.To, move.From)
		}
	default:
		return b, fmt.Errorf("%w: unknown move kind %d", ErrInvalidMove, move.Kind)
	}

	return b.Play(move, piece), nil
}

// String renders the board as five lines of markers, '.' for blanks.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
