package experiments

import (
	"context"
	"fmt"
	"teeko/experiments/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Depth      int
	PhaseAware bool
	Searches   int
	Nodes      int
	Duration   time.Duration
}

// NodesPerSecond is zero when no time was measured.
func (t Throughput) NodesPerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Nodes) / t.Duration.Seconds()
}

func (t Throughput) String() string {
	return fmt.Sprintf("depth=%d phase_aware=%t searches=%d nodes=%d nodes/s=%.0f", t.Depth, t.PhaseAware, t.Searches, t.Nodes, t.NodesPerSecond())
}

// RunThroughputExperiment measures search cost per depth. Both players use
// the same config for similar game lengths.
func RunThroughputExperiment(ctx context.Context, maxDepth int, opts Options) ([]Throughput, error) {
	opts = opts.withDefaults()

	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Depth: depth, PhaseAware: true})
	}

	count := 0
	total := len(configs) * opts.Games
	results := make([]Throughput, 0, len(configs))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, config := range configs {
		result := Throughput{Depth: config.Depth, PhaseAware: config.PhaseAware}
		for i := 0; i < opts.Games; i++ {
			count++
			seed := opts.Seed + uint64(count)
			gameMetric, moveMetrics, err := runGame(ctx, config, config, seed, opts)
			if err != nil {
				return results, fmt.Errorf("depth %d game %d: %w", config.Depth, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Game:       count,
				Agent1:     config.ID,
				Agent2:     config.ID,
				Starter:    config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
				// Opening plies are not searched
				if mm.Nodes == 0 {
					continue
				}
				result.Searches++
				result.Nodes += mm.Nodes
				result.Duration += mm.Duration
			}

			if opts.Progress != nil {
				opts.Progress(count, total)
			}
		}

		results = append(results, result)
		log.Info().Msgf("completed throughput for %s", result)
	}

	if opts.OutDir == "" {
		return results, nil
	}
	if err := store(opts.OutDir, "throughput", configs, gameRecords, moveRecords); err != nil {
		return results, err
	}
	return results, nil
}
