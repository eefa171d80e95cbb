package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presentation"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/script"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

// RunApp - runs an interactive game on in/out until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board, help, err := newRenderers(conf, out)
	if err != nil {
		return err
	}

	prompt := conf.Prompt
	if !isTerminal(in) {
		prompt = ""
	}

	session := usecase.NewGameSession(logger)
	server := cli.New(logger, session, board, help, out, prompt)

	log.Info("Starting game")

	if err = server.Serve(ctx, in); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game finished", "moves", session.CurrentMove())

	return nil
}

// RunReplay - applies a move script to a fresh game and prints the result.
func RunReplay(logger *slog.Logger, conf *config.Config, path string, out io.Writer) error {
	log := logger.With("component", "app", "script", path)

	sc, err := script.Load(path)
	if err != nil {
		return fmt.Errorf("could not load script: %w", err)
	}

	board, _, err := newRenderers(conf, out)
	if err != nil {
		return err
	}

	session := usecase.NewGameSession(logger)
	if err = sc.Apply(session); err != nil {
		return fmt.Errorf("could not replay script: %w", err)
	}

	log.Info("Script replayed", "steps", len(sc.Steps))

	snapshot := session.Snapshot()
	entries := presentation.MoveList(session.History(), snapshot.CurrentMove)

	if _, err = fmt.Fprintf(out, "%s\n%s\n\n%s",
		board.Board(snapshot.Board),
		board.Status(snapshot.Board, snapshot.CurrentMove),
		board.Moves(entries),
	); err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}

	return nil
}

func newRenderers(conf *config.Config, out io.Writer) (*presentation.BoardRenderer, *presentation.HelpRenderer, error) {
	profile, auto, err := presentation.ParseProfile(conf.Color)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid color setting: %w", err)
	}

	board := presentation.NewBoardRenderer(out, profile, auto)

	help, err := presentation.NewHelpRenderer(board.Colored())
	if err != nil {
		return nil, nil, err
	}

	return board, help, nil
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint: gosec // fd fits in int
}
