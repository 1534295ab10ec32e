package cmd

import (
	"encoding/json"
	"fmt"
	"teeko/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Move() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Print the engine's move for a single board",
		Long: heredoc.Doc(`move searches the given board once and prints the chosen
			move as JSON coordinates, [[row, col]] for a drop or
			[[to_row, to_col], [from_row, from_col]] for a relocation.

			The board is 25 cells in row-major order using "b", "r" and
			"." for blanks. Rows may be separated by spaces.
		`),
		Example: `  teeko move --piece r --board "b.... ..... ..r.. ..... ....."`,
		Args:    cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Piece, _ = cmd.Flags().GetString("piece")

			compact, _ := cmd.Flags().GetString("board")
			board, err := game.ParseCompact(compact)
			if err != nil {
				return err
			}

			session, err := newSession(cfg)
			if err != nil {
				return err
			}

			move, metric, err := session.FindMove(board)
			if err != nil {
				return err
			}

			out, err := json.Marshal(move.Coords())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				next := board.Play(move, session.Piece())
				fmt.Fprintf(cmd.ErrOrStderr(), "%s plays %s (%d nodes in %s)\n%s\n",
					session.Piece().Marker(), move, metric.Nodes, metric.Duration, next)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("board", "b", "", "Board to search")
	flags.StringP("piece", "p", game.PieceAMarker, `Piece to move, "b" or "r"`)
	flags.BoolP("verbose", "V", false, "Show the resulting board and search statistics")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}
