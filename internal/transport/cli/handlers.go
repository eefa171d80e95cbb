package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presentation"
)

func (that *Server) handlePlay(_ context.Context, args []string) error {
	index, err := singleIndex(args)
	if err != nil {
		return err
	}

	if err = that.session.Play(index); err != nil {
		return err
	}

	that.render()

	return nil
}

func (that *Server) handleJump(_ context.Context, args []string) error {
	index, err := singleIndex(args)
	if err != nil {
		return err
	}

	if err = that.session.JumpTo(index); err != nil {
		return err
	}

	that.render()

	return nil
}

func (that *Server) handleMoves(_ context.Context, _ []string) error {
	entries := presentation.MoveList(that.session.History(), that.session.CurrentMove())
	that.printf("%s", that.board.Moves(entries))

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	that.render()

	return nil
}

func (that *Server) handleRestart(_ context.Context, _ []string) error {
	that.session.Restart()
	that.render()

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	text, err := that.help.Render(presentation.HelpText)
	if err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}

	that.printf("%s", text)

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.quit = true
	that.printf("Bye!\n")

	return nil
}

func singleIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected one number, got %d arguments", apperror.ErrInvalidArgument, len(args))
	}

	return parseIndex(args[0])
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidArgument, arg)
	}

	return index, nil
}
