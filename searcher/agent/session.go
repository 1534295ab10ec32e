package agent

import (
	"fmt"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/searcher"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type SessionOption func(s *Session)

// Session is one engine seat in one game. Its piece assignment is fixed at
// creation and it keeps no copy of the board between calls.
type Session struct {
	id       uuid.UUID
	own      game.Cell
	opponent game.Cell
	searcher searcher.Searcher
	rng      *rand.Rand
}

// WithPiece fixes the session's colour instead of picking one at random.
func WithPiece(piece game.Cell) SessionOption {
	return func(s *Session) {
		if piece.IsPiece() {
			s.own = piece
		}
	}
}

func WithSearcher(searcher searcher.Searcher) SessionOption {
	return func(s *Session) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

func WithSeed(seed uint64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		id:       uuid.New(),
		searcher: searcher.NewMinimax(),
		rng:      rand.New(rand.NewSource(uint64(rand.Int63()))),
	}
	for _, option := range options {
		option(s)
	}
	if s.own == game.Empty {
		s.own = []game.Cell{game.PieceA, game.PieceB}[s.rng.Intn(2)]
	}
	s.opponent = s.own.Opponent()
	return s
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) Piece() game.Cell {
	return s.own
}

func (s *Session) Opponent() game.Cell {
	return s.opponent
}

// DecidePlacementOrMove returns a drop while fewer than eight pieces are on
// the board and a relocation afterwards.
func (s *Session) DecidePlacementOrMove(board game.Board) (game.Move, error) {
	move, _, err := s.FindMove(board)
	return move, err
}

func (s *Session) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	result, err := s.searcher.Search(board, s.own)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	want := game.Drop
	if board.Phase() == game.MovementPhase {
		want = game.Relocate
	}
	if result.Move.Kind != want {
		panic(fmt.Sprintf("searcher returned %v during %s phase", result.Move, board.Phase()))
	}
	return result.Move, result.Metric, nil
}

// MakeMove takes the board in wire markers and returns the move in wire
// coordinates.
func (s *Session) MakeMove(markers [][]string) ([][2]int, error) {
	board, err := game.ParseBoard(markers)
	if err != nil {
		return nil, err
	}
	move, err := s.DecidePlacementOrMove(board)
	if err != nil {
		return nil, err
	}
	return move.Coords(), nil
}
