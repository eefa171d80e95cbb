package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// Snapshot is everything a front-end needs to render the current position.
type Snapshot struct {
	Board       entity.Board
	CurrentMove int
	Moves       int
	NextMark    entity.Mark
	Winner      entity.Mark
	HasWinner   bool
	IsDraw      bool
}

// GameSession owns the history and cursor of one game.
// It is not safe for concurrent use; give each player session its own instance.
type GameSession struct {
	logger *slog.Logger

	history     tictactoe.History
	currentMove int
}

func NewGameSession(logger *slog.Logger) *GameSession {
	return &GameSession{
		logger:      logger.With("component", "session"),
		history:     tictactoe.NewHistory(),
		currentMove: 0,
	}
}

// Play - plays the cell on the current board. Illegal moves are ignored.
func (that *GameSession) Play(cell int) error {
	log := that.logger.With("method", "Play", "cell", cell, "move", that.currentMove)

	history, move, err := tictactoe.Play(that.history, that.currentMove, cell)
	if err != nil {
		return fmt.Errorf("failed to play cell: %w", err)
	}

	if move == that.currentMove {
		log.Debug("move ignored")
		return nil
	}

	if discarded := len(that.history) - len(history) + 1; discarded > 0 {
		log.Debug("history truncated", "discarded", discarded)
	}

	that.history = history
	that.currentMove = move

	log.Debug("move played", "mark", tictactoe.NextMark(move-1).String())

	return nil
}

// JumpTo - moves the cursor to a previous or later board without touching history.
func (that *GameSession) JumpTo(move int) error {
	next, err := tictactoe.Jump(move, len(that.history))
	if err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	that.logger.Debug("cursor moved", "method", "JumpTo", "from", that.currentMove, "to", next)
	that.currentMove = next

	return nil
}

// Restart - drops the whole history and starts over.
func (that *GameSession) Restart() {
	that.history = tictactoe.NewHistory()
	that.currentMove = 0

	that.logger.Debug("game restarted", "method", "Restart")
}

func (that *GameSession) Current() entity.Board {
	return that.history[that.currentMove]
}

func (that *GameSession) CurrentMove() int {
	return that.currentMove
}

// History - returns a copy, the session keeps ownership of its own slice.
func (that *GameSession) History() tictactoe.History {
	history := make(tictactoe.History, len(that.history))
	copy(history, that.history)

	return history
}

// Snapshot - derives the display values from the current board.
func (that *GameSession) Snapshot() Snapshot {
	board := that.Current()
	winner, hasWinner := board.Winner()

	return Snapshot{
		Board:       board,
		CurrentMove: that.currentMove,
		Moves:       len(that.history),
		NextMark:    tictactoe.NextMark(that.currentMove),
		Winner:      winner,
		HasWinner:   hasWinner,
		IsDraw:      board.IsDraw(),
	}
}
