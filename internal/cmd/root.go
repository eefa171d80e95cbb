package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/logging"
)

// options are filled by the root command before any subcommand runs.
type options struct {
	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal and travel back through the moves",
		Long: heredoc.Doc(`
			tictactoe plays a game of tic-tac-toe for two players sharing a terminal.

			Every board of the game is kept, so any earlier position can be shown
			again with the jump command. Playing a move from an earlier position
			discards the moves that followed it.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to the config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	play := Play(opts)
	root.RunE = play.RunE

	root.AddCommand(play)
	root.AddCommand(Replay(opts))

	return root
}

func (that *options) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	conf, err := config.Load(config.Locate(path))
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		conf.LogLevel = level
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		conf.Color = "ascii"
	}

	if err = conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(os.Stderr, conf.LogLevel, conf.LogFormat)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	that.conf = conf
	that.logger = logger

	return nil
}
