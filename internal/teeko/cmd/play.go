package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"teeko/engine"
	"teeko/searcher/agent"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game against a running move server",
		Long: heredoc.Doc(`play asks the server at --remote which piece it plays and
			then plays one game against it with a local engine on the
			other piece. Every move is checked before it is applied.
		`),
		Example: `  teeko play --remote http://localhost:5000 --first remote`,
		Args:    cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			remoteURL, _ := flags.GetString("remote")
			first, _ := flags.GetString("first")
			if flags.Changed("max-turns") {
				cfg.SelfPlay.MaxTurns, _ = flags.GetInt("max-turns")
			}
			if first != "local" && first != "remote" {
				return fmt.Errorf("--first must be local or remote, got %q", first)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			remote, err := engine.NewRemoteAgent(ctx, remoteURL, &http.Client{Timeout: time.Minute})
			if err != nil {
				return err
			}
			cfg.Piece = remote.Piece().Opponent().Marker()
			local, err := newSession(cfg)
			if err != nil {
				return err
			}

			agents := [2]agent.Agent{local, remote}
			if first == "remote" {
				agents = [2]agent.Agent{remote, local}
			}
			var e engine.Engine = engine.NewLocalEngine(agents, engine.WithMaxTurns(cfg.SelfPlay.MaxTurns))

			gameMetric, moves, err := e.Run(ctx)
			if err != nil {
				return err
			}
			for _, move := range moves {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s %s\n", move.Step, move.Piece, move.Move)
			}
			if gameMetric.Winner == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "no winner after %d plies\n", gameMetric.TotalMoves)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s wins after %d plies\n", gameMetric.Winner, gameMetric.TotalMoves)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("remote", "r", "", "Base URL of the move server")
	flags.String("first", "local", `Side that moves first, "local" or "remote"`)
	flags.Int("max-turns", 0, "Plies after which the game is stopped")
	_ = cmd.MarkFlagRequired("remote")

	return cmd
}
