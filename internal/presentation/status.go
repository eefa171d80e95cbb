package presentation

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// Status - status line for the board at the given cursor.
func Status(board entity.Board, currentMove int) string {
	if winner, ok := board.Winner(); ok {
		return "Winner: " + winner.String()
	}

	if board.IsDraw() {
		return "Draw"
	}

	return "Next player: " + tictactoe.NextMark(currentMove).String()
}

// MoveLabel - label of the history entry that jumps to the given move.
func MoveLabel(move int) string {
	if move > 0 {
		return fmt.Sprintf("Go to move #%d", move)
	}

	return "Go to game start"
}

// CurrentMoveLabel - label shown instead of a jump for the board on display.
func CurrentMoveLabel(move int) string {
	if move > 0 {
		return fmt.Sprintf("You are at move #%d", move)
	}

	return "You are at game start"
}

type MoveEntry struct {
	Move    int
	Label   string
	Current bool

	// Cell and Mark describe the move that produced this board. Unset for the game start.
	Cell    int
	Mark    entity.Mark
	HasCell bool
}

// MoveList - one entry per board in history.
func MoveList(history tictactoe.History, currentMove int) []MoveEntry {
	entries := make([]MoveEntry, 0, len(history))

	for move := range history {
		entry := MoveEntry{
			Move:    move,
			Label:   MoveLabel(move),
			Current: move == currentMove,
		}

		if entry.Current {
			entry.Label = CurrentMoveLabel(move)
		}

		entry.Cell, entry.Mark, entry.HasCell = tictactoe.MoveAt(history, move)

		entries = append(entries, entry)
	}

	return entries
}
