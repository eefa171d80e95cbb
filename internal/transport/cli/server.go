package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presentation"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type gameSession interface {
	Play(cell int) error
	JumpTo(move int) error
	Restart()

	CurrentMove() int
	History() tictactoe.History
	Snapshot() usecase.Snapshot
}

type helpRenderer interface {
	Render(markdown string) (string, error)
}

type handler func(ctx context.Context, args []string) error

// Server reads commands line by line and prints the game after each one.
type Server struct {
	logger  *slog.Logger
	session gameSession

	board *presentation.BoardRenderer
	help  helpRenderer

	out    io.Writer
	prompt string

	handlers map[string]handler
	quit     bool
}

// New - prompt is printed before every command; pass an empty prompt for non-interactive input.
func New(
	logger *slog.Logger,
	session gameSession,
	board *presentation.BoardRenderer,
	help helpRenderer,
	out io.Writer,
	prompt string,
) *Server {
	server := &Server{
		logger:  logger.With("component", "cli"),
		session: session,
		board:   board,
		help:    help,
		out:     out,
		prompt:  prompt,

		handlers: make(map[string]handler),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["jump"] = server.handleJump
	server.handlers["moves"] = server.handleMoves
	server.handlers["board"] = server.handleBoard
	server.handlers["restart"] = server.handleRestart
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Serve - runs the command loop until quit, end of input or ctx cancellation.
func (that *Server) Serve(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Serve")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.render()

	for !that.quit {
		that.printf("%s", that.prompt)

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving game")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}

				log.Debug("end of input")
				return nil
			}

			if err := that.Execute(ctx, line); err != nil {
				log.Debug("command failed", "line", line, "error", err)
				that.printf("error: %v\n", err)
			}
		}
	}

	return nil
}

// Execute - runs a single command line.
func (that *Server) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]

	// a bare number is shorthand for play
	if _, err := parseIndex(name); err == nil {
		name, args = "play", fields
	}

	handle, ok := that.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, name)
	}

	return handle(ctx, args)
}

func (that *Server) render() {
	snapshot := that.session.Snapshot()

	that.printf("\n%s\n%s\n", that.board.Board(snapshot.Board), that.board.Status(snapshot.Board, snapshot.CurrentMove))
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
