package game

import "fmt"

// Coord addresses a board square with 0-based row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Adjacent reports whether o is one of the 8 king-move neighbours of c.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := abs(c.Row-o.Row), abs(c.Col-o.Col)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type MoveKind int

const (
	Drop MoveKind = iota
	Relocate
)

// Move is either a Drop onto To (placement phase) or a Relocate of the piece
// on From to the adjacent square To (movement phase).
type Move struct {
	Kind MoveKind
	To   Coord
	From Coord
}

func NewDrop(row, col int) Move {
	return Move{Kind: Drop, To: Coord{row, col}}
}

func NewRelocate(to, from Coord) Move {
	return Move{Kind: Relocate, To: to, From: from}
}

// Coords returns the wire shape of the move: [[r c]] for a drop and
// [[toR toC] [fromR fromC]] for a relocation.
func (m Move) Coords() [][2]int {
	switch m.Kind {
	case Drop:
		return [][2]int{{m.To.Row, m.To.Col}}
	case Relocate:
		return [][2]int{{m.To.Row, m.To.Col}, {m.From.Row, m.From.Col}}
	default:
		panic("unexpected move kind")
	}
}

func (m Move) String() string {
	if m.Kind == Relocate {
		return fmt.Sprintf("%v<-%v", m.To, m.From)
	}
	return m.To.String()
}

// MoveFromCoords parses the wire shape produced by Coords.
func MoveFromCoords(coords [][2]int) (Move, error) {
	var move Move
	switch len(coords) {
	case 1:
		move = NewDrop(coords[0][0], coords[0][1])
	case 2:
		move = NewRelocate(Coord{coords[0][0], coords[0][1]}, Coord{coords[1][0], coords[1][1]})
	default:
		return Move{}, fmt.Errorf("%w: expected 1 or 2 coordinates, got %d", ErrInvalidMove, len(coords))
	}
	if !move.To.InBounds() || (move.Kind == Relocate && !move.From.InBounds()) {
		return Move{}, fmt.Errorf("%w: coordinates %v out of range", ErrInvalidMove, coords)
	}
	return move, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
