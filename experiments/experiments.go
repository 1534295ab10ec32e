package experiments

import (
	"context"
	"fmt"
	"teeko/engine"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/meta"
	"teeko/searcher"
	"teeko/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Games    int // Per match up
	MaxTurns int
	Openings int // Random plies at the start of every game
	Seed     uint64
	OutDir   string // Records are not stored when empty
	// Progress is called after every game when set
	Progress func(done, total int)
}

func (o Options) withDefaults() Options {
	if o.Games <= 0 {
		o.Games = meta.GAMES
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = meta.MAX_TURNS
	}
	return o
}

type MatchUpResult struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
	Wins1  int
	Wins2  int
	Draws  int // Games stopped at the ply limit
}

func (r MatchUpResult) String() string {
	return fmt.Sprintf("agent%d vs agent%d: %d-%d (%d unfinished)", r.Agent1.ID, r.Agent2.ID, r.Wins1, r.Wins2, r.Draws)
}

// RunSelfPlay pits an agent against a copy of itself.
func RunSelfPlay(ctx context.Context, config metrics.AgentConfig, opts Options) ([]MatchUpResult, error) {
	return runExperiment(ctx, "selfplay", []metrics.AgentConfig{config}, [][2]metrics.AgentConfig{{config, config}}, opts)
}

// RunPhaseExperiment pairs the phase-aware search against the search that
// keeps generating relocations below the root.
func RunPhaseExperiment(ctx context.Context, depth int, opts Options) ([]MatchUpResult, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: depth, PhaseAware: true}
	blind := metrics.AgentConfig{ID: 1, Depth: depth, PhaseAware: false}
	return runExperiment(ctx, "phase", []metrics.AgentConfig{baseline, blind}, [][2]metrics.AgentConfig{{baseline, blind}}, opts)
}

// RunDepthExperiment pairs every depth up to maxDepth against depth 1.
func RunDepthExperiment(ctx context.Context, maxDepth int, opts Options) ([]MatchUpResult, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, PhaseAware: true}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth - 1, Depth: depth, PhaseAware: true}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "depth", configs, matchUps, opts)
}

// RunBaselineExperiment pairs the search against uniformly random play.
func RunBaselineExperiment(ctx context.Context, depth int, opts Options) ([]MatchUpResult, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	config := metrics.AgentConfig{ID: 1, Depth: depth, PhaseAware: true}
	return runExperiment(ctx, "baseline", []metrics.AgentConfig{baseline, config}, [][2]metrics.AgentConfig{{baseline, config}}, opts)
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, opts Options) ([]MatchUpResult, error) {
	opts = opts.withDefaults()

	count := 0
	total := len(matchUps) * opts.Games
	results := make([]MatchUpResult, 0, len(matchUps))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]
		result := MatchUpResult{Agent1: config1, Agent2: config2}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.Games; i++ {
			count++
			// Alternate the starting agent
			swapped := i%2 == 1
			first, second := config1, config2
			if swapped {
				first, second = config2, config1
			}

			seed := opts.Seed + uint64(count)
			gameMetric, moveMetrics, err := runGame(ctx, first, second, seed, opts)
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			switch {
			case gameMetric.Winner == "":
				result.Draws++
			case (gameMetric.Winner == game.PieceA.Marker()) != swapped:
				result.Wins1++
			default:
				result.Wins2++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Game:       count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				Starter:    first.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if opts.Progress != nil {
				opts.Progress(count, total)
			}
			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}

		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %s", mi+1, len(matchUps), result)
	}

	log.Info().Msgf("completed %s experiment", name)

	if opts.OutDir == "" {
		return results, nil
	}
	if err := store(opts.OutDir, name, configs, gameRecords, moveRecords); err != nil {
		return results, err
	}
	return results, nil
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}

// runGame plays a single game in which first moves first with PieceA.
func runGame(ctx context.Context, first, second metrics.AgentConfig, seed uint64, opts Options) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(first, game.PieceA, seed),
		createAgent(second, game.PieceB, seed+1),
	}
	e := engine.NewLocalEngine(agents,
		engine.WithMaxTurns(opts.MaxTurns),
		engine.WithRandomOpenings(opts.Openings, seed),
	)
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, piece game.Cell, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(piece, seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if !config.PhaseAware {
		options = append(options, searcher.WithPhaseBlindRecursion())
	}
	return agent.NewSession(
		agent.WithPiece(piece),
		agent.WithSearcher(searcher.NewMinimax(options...)),
		agent.WithSeed(seed),
	)
}
