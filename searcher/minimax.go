package searcher

import (
	"fmt"
	"math"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth minimax search. It holds configuration only, so a
// single value may serve any number of concurrent searches.
type Minimax struct {
	depth      int
	phaseBlind bool
	evaluate   game.Evaluate
	metrics    bool
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithPhaseBlindRecursion generates relocations at every node below the
// root, even while pieces are still being dropped.
func WithPhaseBlindRecursion() Option {
	return func(m *Minimax) {
		m.phaseBlind = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.SEARCH_DEPTH,
		evaluate: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) PhaseAware() bool {
	return !m.phaseBlind
}

// Search maximises over own's moves at the root. Ties keep the move
// generated first.
func (m *Minimax) Search(board game.Board, own game.Cell) (Result, error) {
	if !own.IsPiece() {
		panic("search perspective must be a piece")
	}

	collector := m.newCollector()
	collector.Start(m.depth, m.PhaseAware())
	collector.AddNode()

	var best Result
	found := false
	bestScore := math.Inf(-1)
	for move := range board.LegalMoves(board.Phase(), own) {
		child := board.Play(move, own)
		score := m.minValue(child, own, m.depth-1, collector)
		if score > bestScore {
			bestScore = score
			best.Move = move
			best.Score = score
			found = true
		}
	}
	if !found {
		return Result{}, fmt.Errorf("%w: %q cannot move in %s phase", game.ErrNoLegalMoves, own.Marker(), board.Phase())
	}

	best.Metric = collector.Complete()
	log.Debug().
		Str("piece", own.Marker()).
		Stringer("move", best.Move).
		Float64("score", best.Score).
		Int("nodes", best.Metric.Nodes).
		Msg("search complete")
	return best, nil
}

func (m *Minimax) maxValue(board game.Board, own game.Cell, depth int, collector metrics.Collector) float64 {
	collector.AddNode()
	if depth <= 0 || board.IsTerminal() {
		collector.AddLeaf()
		return m.evaluate(board, own)
	}

	v := math.Inf(-1)
	for move := range board.LegalMoves(m.phase(board), own) {
		v = max(v, m.minValue(board.Play(move, own), own, depth-1, collector))
	}
	if math.IsInf(v, -1) { // Side to move is blocked
		collector.AddLeaf()
		return m.evaluate(board, own)
	}
	return v
}

func (m *Minimax) minValue(board game.Board, own game.Cell, depth int, collector metrics.Collector) float64 {
	collector.AddNode()
	if depth <= 0 || board.IsTerminal() {
		collector.AddLeaf()
		return m.evaluate(board, own)
	}

	opponent := own.Opponent()
	v := math.Inf(1)
	for move := range board.LegalMoves(m.phase(board), opponent) {
		v = min(v, m.maxValue(board.Play(move, opponent), own, depth-1, collector))
	}
	if math.IsInf(v, 1) { // Side to move is blocked
		collector.AddLeaf()
		return m.evaluate(board, own)
	}
	return v
}

// phase returns the phase used to generate moves below the root.
func (m *Minimax) phase(board game.Board) game.Phase {
	if m.phaseBlind {
		return game.MovementPhase
	}
	return board.Phase()
}

func (m *Minimax) newCollector() metrics.Collector {
	if m.metrics {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}
