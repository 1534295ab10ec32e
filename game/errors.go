package game

import "errors"

var (
	// ErrMalformedBoard occurs when a board is not a 5x5 grid of known markers
	ErrMalformedBoard = errors.New("malformed board")
	// ErrInvalidMove occurs when a move breaks the drop or relocation rules
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoLegalMoves occurs when a search is started on a position without
	// any move for the side to play
	ErrNoLegalMoves = errors.New("no legal moves")
)
