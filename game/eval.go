package game

// MaterialScale keeps material scores well inside (-1, 1) so that a won or
// lost position always outranks any material advantage.
const MaterialScale = 100.0

// EvaluateMaterial scores terminal boards exactly 1 or -1 and otherwise
// returns the piece count difference in favour of perspective, scaled by
// MaterialScale.
func EvaluateMaterial(board Board, perspective Cell) float64 {
	switch board.Outcome(perspective) {
	case Win:
		return 1
	case Loss:
		return -1
	}

	diff := 0
	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case perspective:
				diff++
			case perspective.Opponent():
				diff--
			}
		}
	}
	return float64(diff) / MaterialScale
}
