package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"teeko/searcher/agent"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve moves to the browser client over HTTP",
		Long: heredoc.Doc(`serve starts one engine session and answers move requests
			for it until interrupted.

			POST /ai-move takes {"board": [[...], ...]} with " ", "b" and "r"
			markers and returns the engine's move as a list of coordinates.
			GET /session reports the session ID and the engine's piece.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("piece") {
				cfg.Piece, _ = cmd.Flags().GetString("piece")
			}

			session, err := newSession(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Debug().Int("depth", cfg.Depth).Bool("phase_aware", cfg.PhaseAware).Msg("search configured")
			return agent.StartAgentServer(ctx, cfg.Addr, session)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "Address to listen on")
	flags.String("piece", "", `Engine piece, "b" or "r" (random when empty)`)

	return cmd
}
