package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"teeko/config"
	"teeko/experiments"
	"teeko/experiments/metrics"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// SPIN is the spinner character set shown while games are played.
const SPIN = 14

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play engine games locally and record the results",
		Long: heredoc.Doc(`selfplay runs engine against engine games and stores
			agent_configs.csv, game_records.csv and move_records.csv under
			<out>/<experiment>/<timestamp>.

			Experiments:
			  selfplay    the configured search against itself
			  phase       phase-aware against phase-blind recursion
			  depth       every depth up to --depth against depth 1
			  baseline    the configured search against random play
			  throughput  nodes searched per second for each depth
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("games") {
				cfg.SelfPlay.Games, _ = flags.GetInt("games")
			}
			if flags.Changed("max-turns") {
				cfg.SelfPlay.MaxTurns, _ = flags.GetInt("max-turns")
			}
			if flags.Changed("openings") {
				cfg.SelfPlay.Openings, _ = flags.GetInt("openings")
			}
			if flags.Changed("out") {
				cfg.SelfPlay.OutDir, _ = flags.GetString("out")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			experiment, _ := flags.GetString("experiment")
			seed, _ := flags.GetUint64("seed")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Start()
			defer s.Stop()

			opts := experiments.Options{
				Games:    cfg.SelfPlay.Games,
				MaxTurns: cfg.SelfPlay.MaxTurns,
				Openings: cfg.SelfPlay.Openings,
				Seed:     seed,
				OutDir:   cfg.SelfPlay.OutDir,
				Progress: func(done, total int) {
					s.Lock()
					s.Suffix = fmt.Sprintf(" game %d of %d", done, total)
					s.Unlock()
				},
			}

			lines, err := runExperiment(ctx, experiment, cfg, opts)
			s.Stop()
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("experiment", "e", "selfplay", "Experiment to run")
	flags.IntP("games", "n", 0, "Games per match up")
	flags.Int("max-turns", 0, "Plies after which a game is stopped")
	flags.Int("openings", 0, "Random plies at the start of every game")
	flags.StringP("out", "o", "", "Directory to store records in")
	flags.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random openings and agents")

	return cmd
}

func runExperiment(ctx context.Context, name string, cfg config.Config, opts experiments.Options) ([]string, error) {
	switch name {
	case "selfplay":
		agentConfig := metrics.AgentConfig{ID: 0, Depth: cfg.Depth, PhaseAware: cfg.PhaseAware}
		return lines(experiments.RunSelfPlay(ctx, agentConfig, opts))
	case "phase":
		return lines(experiments.RunPhaseExperiment(ctx, cfg.Depth, opts))
	case "depth":
		return lines(experiments.RunDepthExperiment(ctx, cfg.Depth, opts))
	case "baseline":
		return lines(experiments.RunBaselineExperiment(ctx, cfg.Depth, opts))
	case "throughput":
		return lines(experiments.RunThroughputExperiment(ctx, cfg.Depth, opts))
	default:
		return nil, fmt.Errorf("unknown experiment %q", name)
	}
}

func lines[T fmt.Stringer](results []T, err error) ([]string, error) {
	out := make([]string, 0, len(results))
	for _, result := range results {
		out = append(out, result.String())
	}
	return out, err
}
