package gamemaster

import (
	"errors"
	"fmt"
	"teeko/game"
	"teeko/meta"
)

// ErrGameOver is returned by Play once a side has completed a pattern.
var ErrGameOver = errors.New("game is over - no moves allowed")

type Update struct {
	Move  game.Move
	Piece game.Cell
	Board game.Board
}

// UpdateGetter returns the next unread update, or false when none is pending.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init() (game.Board, UpdateGetter)
	Play(game.Move) error
}

// localEngine referees a single game: it owns the board, checks every move
// against the rules for the side to play and passes the turn.
type localEngine struct {
	first    game.Cell
	board    game.Board
	turn     game.Cell
	winner   game.Cell
	plies    int
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine(first game.Cell) *localEngine {
	if !first.IsPiece() {
		panic("first player must be a piece")
	}
	return &localEngine{first: first}
}

func (e *localEngine) Init() (game.Board, UpdateGetter) {
	e.board = game.Board{}
	e.turn = e.first
	e.winner = game.Empty
	e.plies = 0
	e.gameOver = false
	e.updateCh = make(chan Update, meta.MAX_TURNS+1)

	return e.board, func() (Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return ErrGameOver
	}
	if e.updateCh == nil {
		return fmt.Errorf("game not initialised")
	}

	next, err := e.board.Apply(move, e.turn)
	if err != nil {
		return fmt.Errorf("illegal move %v for %q: %w", move, e.turn.Marker(), err)
	}

	u := Update{Move: move, Piece: e.turn, Board: next}
	e.board = next
	e.plies++
	if winner := next.Winner(); winner != game.Empty {
		e.winner = winner
		e.gameOver = true
		// Send final update then close
		e.publish(u)
		close(e.updateCh)
		return nil
	}

	e.turn = e.turn.Opponent()
	e.publish(u)
	return nil
}

// publish never blocks: when nobody reads updates the oldest one is dropped.
func (e *localEngine) publish(u Update) {
	select {
	case e.updateCh <- u:
	default:
		<-e.updateCh
		e.updateCh <- u
	}
}

func (e *localEngine) Board() game.Board {
	return e.board
}

// Turn returns the piece to play next.
func (e *localEngine) Turn() game.Cell {
	return e.turn
}

func (e *localEngine) Plies() int {
	return e.plies
}

// Winner returns game.Empty while the game is running.
func (e *localEngine) Winner() game.Cell {
	return e.winner
}

func (e *localEngine) IsOver() bool {
	return e.gameOver
}
