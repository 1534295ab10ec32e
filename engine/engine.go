package engine

import (
	"context"
	"teeko/experiments/metrics"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of plies is reached
	Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error)
}
