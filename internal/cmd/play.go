package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-timetravel/internal"
)

// tictactoe play
func Play(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`
			play reads one command per line from standard input.

			Type a cell number from 0 to 8 to place the next mark, "jump N"
			to show board N of the game, "moves" to list every board and
			"help" for the full list of commands.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return application.RunApp(cmd.Context(), opts.logger, opts.conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
