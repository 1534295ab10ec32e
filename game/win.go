package game

// Winner scans the board for four matching pieces in a row, column,
// diagonal or 2x2 box and returns the colour of the first pattern found.
// Rows are scanned first, then columns, both diagonal directions and
// finally boxes. Empty means nobody has won.
func (b Board) Winner() Cell {
	// Horizontal
	for r := 0; r < Size; r++ {
		for c := 0; c < 2; c++ {
			if p := b[r][c]; p != Empty && p == b[r][c+1] && p == b[r][c+2] && p == b[r][c+3] {
				return p
			}
		}
	}
	// Vertical
	for c := 0; c < Size; c++ {
		for r := 0; r < 2; r++ {
			if p := b[r][c]; p != Empty && p == b[r+1][c] && p == b[r+2][c] && p == b[r+3][c] {
				return p
			}
		}
	}
	// Descending diagonal
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if p := b[r][c]; p != Empty && p == b[r+1][c+1] && p == b[r+2][c+2] && p == b[r+3][c+3] {
				return p
			}
		}
	}
	// Ascending diagonal
	for r := 0; r < 2; r++ {
		for c := 3; c < Size; c++ {
			if p := b[r][c]; p != Empty && p == b[r+1][c-1] && p == b[r+2][c-2] && p == b[r+3][c-3] {
				return p
			}
		}
	}
	// Box
	for r := 0; r < Size-1; r++ {
		for c := 0; c < Size-1; c++ {
			if p := b[r][c]; p != Empty && p == b[r][c+1] && p == b[r+1][c] && p == b[r+1][c+1] {
				return p
			}
		}
	}
	return Empty
}

// Outcome returns Win or Loss for perspective when a pattern is complete.
func (b Board) Outcome(perspective Cell) Outcome {
	switch winner := b.Winner(); winner {
	case Empty:
		return NoResult
	case perspective:
		return Win
	default:
		return Loss
	}
}

// IsTerminal reports whether either side has completed a pattern.
func (b Board) IsTerminal() bool {
	return b.Winner() != Empty
}
