package game

// Size is the width and height of the Teeko board.
const Size = 5

// PiecesPerSide is the number of pieces each side drops before the game
// switches to moving pieces around.
const PiecesPerSide = 4

// MovementThreshold is the number of pieces on the board at which the
// placement phase ends.
const MovementThreshold = 2 * PiecesPerSide

// Cell is the content of a single board square. PieceA and PieceB double as
// the two piece colours a side can play.
type Cell uint8

const (
	Empty Cell = iota
	PieceA
	PieceB
)

// Markers used on the wire by the browser client
const (
	BlankMarker  = " "
	PieceAMarker = "b"
	PieceBMarker = "r"
)

// Opponent returns the complementary piece. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PieceA:
		return PieceB
	case PieceB:
		return PieceA
	default:
		return Empty
	}
}

// Marker returns the single-character marker used on the wire.
func (c Cell) Marker() string {
	switch c {
	case PieceA:
		return PieceAMarker
	case PieceB:
		return PieceBMarker
	default:
		return BlankMarker
	}
}

func (c Cell) String() string {
	switch c {
	case PieceA:
		return "b"
	case PieceB:
		return "r"
	default:
		return "."
	}
}

// IsPiece reports whether c is one of the two playable colours.
func (c Cell) IsPiece() bool {
	return c == PieceA || c == PieceB
}

type Phase int

const (
	PlacementPhase Phase = iota
	MovementPhase
)

func (p Phase) String() string {
	switch p {
	case PlacementPhase:
		return "placement"
	case MovementPhase:
		return "movement"
	default:
		return "unknown"
	}
}

// Outcome of a position seen from a perspective piece.
type Outcome int

const (
	Loss     Outcome = -1
	NoResult Outcome = 0
	Win      Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "none"
	}
}

// Evaluates the board to a score between -1 and 1 indicating how favorable
// the position is for the perspective piece. Terminal positions score
// exactly -1 or 1.
type Evaluate func(board Board, perspective Cell) float64
