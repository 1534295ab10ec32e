package cmd

import (
	"teeko/config"
	"teeko/searcher"
	"teeko/searcher/agent"
)

func newSession(cfg config.Config) (*agent.Session, error) {
	piece, err := cfg.Cell()
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithDepth(cfg.Depth), searcher.WithMetrics()}
	if !cfg.PhaseAware {
		options = append(options, searcher.WithPhaseBlindRecursion())
	}
	return agent.NewSession(
		agent.WithPiece(piece),
		agent.WithSearcher(searcher.NewMinimax(options...)),
	), nil
}
