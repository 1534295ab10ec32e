// meta/meta.go
package meta

// SEARCH_DEPTH defines the number of plies the minimax search looks ahead.
const SEARCH_DEPTH = 2

// MAX_TURNS defines the number of plies after which a self-play game is a draw.
const MAX_TURNS = 200

// GAMES defines the number of self-play games per match up.
const GAMES = 10

// ADDR defines the default listen address of the move server.
const ADDR = ":5000"
