package cmd

import (
	"fmt"
	"teeko/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "teeko",
		Short: "Minimax engine for the game of Teeko",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(cmd.Flag("log-level").Value.String())
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			// --trace wins over --log-level
			if cmd.Flag("trace").Changed {
				level = zerolog.TraceLevel
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("log-level", zerolog.InfoLevel.String(), "Minimum log level")
	root.PersistentFlags().IntP("depth", "d", 0, "Search depth in plies")
	root.PersistentFlags().Bool("phase-blind", false, "Generate relocations below the root even during placement")

	root.AddCommand(Serve())
	root.AddCommand(Move())
	root.AddCommand(SelfPlay())
	root.AddCommand(Play())

	return root
}

// loadConfig reads --config when given and applies the search flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("depth") {
		cfg.Depth, _ = cmd.Flags().GetInt("depth")
	}
	if cmd.Flags().Changed("phase-blind") {
		blind, _ := cmd.Flags().GetBool("phase-blind")
		cfg.PhaseAware = !blind
	}
	return cfg, cfg.Validate()
}
