package game

import "iter"

// LegalMoves yields the moves available to piece in the given phase in
// row-major order. The sequence can be ranged over any number of times.
//
// During placement every empty cell is a drop. During movement each of
// piece's cells is visited in row-major order and each empty neighbour is
// yielded, rows before columns, from the upper left.
func (b Board) LegalMoves(phase Phase, piece Cell) iter.Seq[Move] {
	switch phase {
	case PlacementPhase:
		return b.drops()
	case MovementPhase:
		return b.relocations(piece)
	default:
		panic("unexpected phase")
	}
}

func (b Board) drops() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if b[r][c] == Empty && !yield(NewDrop(r, c)) {
					return
				}
			}
		}
	}
}

func (b Board) relocations(piece Cell) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if b[row][col] != piece {
					continue
				}
				from := Coord{row, col}
				for r := max(0, row-1); r < min(Size, row+2); r++ {
					for c := max(0, col-1); c < min(Size, col+2); c++ {
						if b[r][c] == Empty && !yield(NewRelocate(Coord{r, c}, from)) {
							return
						}
					}
				}
			}
		}
	}
}
