package engine

import (
	"context"
	"fmt"
	"slices"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/gamemaster"
	"teeko/meta"
	"teeko/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *LocalEngine)

// LocalEngine plays two agents against each other from an empty board. The
// first agent moves first.
type LocalEngine struct {
	agents   [2]agent.Agent
	maxTurns int
	openings int
	rng      *rand.Rand
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithRandomOpenings plays the first n plies uniformly at random so that
// deterministic agents do not repeat the same game.
func WithRandomOpenings(n int, seed uint64) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.openings = n
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func NewLocalEngine(agents [2]agent.Agent, options ...Option) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if agents[0].Piece() != agents[1].Piece().Opponent() {
		panic("agents must play opposite pieces")
	}

	e := &LocalEngine{
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found, the ply limit
// is reached or ctx is cancelled.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	referee := gamemaster.NewLocalEngine(e.agents[0].Piece())
	board, getUpdate := referee.Init()

	gameMetric := metrics.GameMetric{
		ID:            uuid.NewString(),
		StartingPiece: e.agents[0].Piece().Marker(),
		StartTime:     time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%q is starting game %s", gameMetric.StartingPiece, gameMetric.ID)

	for step := 1; !referee.IsOver() && step <= e.maxTurns; step++ {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		current := e.agents[(step-1)%2]
		var (
			move   game.Move
			search metrics.SearchMetric
			err    error
		)
		if step <= e.openings {
			move, err = e.randomMove(board, current.Piece())
		} else {
			move, search, err = current.FindMove(board)
		}
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %q failed to move: %w", step, current.Piece().Marker(), err)
		}

		if err := referee.Play(move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		update, ok := getUpdate()
		if !ok {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: referee published no update", step)
		}
		board = update.Board

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Piece:        update.Piece.Marker(),
			Move:         update.Move.String(),
			Score:        game.EvaluateMaterial(board, update.Piece),
			SearchMetric: search,
		})
		log.Trace().Int("step", step).Str("piece", update.Piece.Marker()).Stringer("move", update.Move).Msg("played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = referee.Plies()
	if referee.IsOver() {
		gameMetric.Winner = referee.Winner().Marker()
		log.Debug().Msgf("game %s won by %q after %d plies", gameMetric.ID, gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Debug().Msgf("game %s stopped after %d plies (no winner yet)", gameMetric.ID, gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics, nil
}

func (e *LocalEngine) randomMove(board game.Board, piece game.Cell) (game.Move, error) {
	moves := slices.Collect(board.LegalMoves(board.Phase(), piece))
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMoves
	}
	return moves[e.rng.Intn(len(moves))], nil
}
