package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-timetravel/internal"
)

// tictactoe replay <file>
func Replay(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a scripted game and print the final board",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`
			replay applies the steps of a YAML script to a new game and prints
			the resulting board, its status and the move list.

			Each step is either "play: <cell>" or "jump: <move>":

			    steps:
			      - play: 4
			      - play: 0
			      - jump: 1
			      - play: 8`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.RunReplay(opts.logger, opts.conf, args[0], cmd.OutOrStdout())
		},
	}
}
