package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// History is the ordered sequence of boards visited in a game.
// Index 0 is always the empty board. A History is treated as a value:
// Play returns a new slice and never writes to the one it was given.
type History []entity.Board

func NewHistory() History {
	return History{entity.NewBoard()}
}

// NextMark - returns the mark that moves from the given cursor position.
// X moves on even positions, O on odd ones.
func NextMark(currentMove int) entity.Mark {
	if currentMove%2 == 0 {
		return entity.X
	}

	return entity.O
}

// Play - places the next mark on the board at currentMove.
//
// Occupied cells and boards that already have a winner leave the history and
// cursor unchanged. Otherwise everything after currentMove is discarded, the new
// board is appended and the cursor points at it.
func Play(history History, currentMove, cell int) (History, int, error) {
	if err := validateCursor(history, currentMove); err != nil {
		return nil, 0, err
	}

	if err := entity.ValidateCell(cell); err != nil {
		return nil, 0, err
	}

	board := history[currentMove]
	if !canPlay(board, cell) {
		return history, currentMove, nil
	}

	board[cell] = NextMark(currentMove)

	next := make(History, currentMove+2)
	copy(next, history[:currentMove+1])
	next[currentMove+1] = board

	return next, currentMove + 1, nil
}

// Jump - repoints the cursor. History is never touched.
func Jump(candidate, historyLength int) (int, error) {
	if candidate < 0 || candidate >= historyLength {
		return 0, fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, candidate, historyLength)
	}

	return candidate, nil
}

// MoveAt - reports the cell and mark placed by the given move.
func MoveAt(history History, move int) (int, entity.Mark, bool) {
	if move < 1 || move >= len(history) {
		return 0, entity.Empty, false
	}

	prev, curr := history[move-1], history[move]
	for i := range curr {
		if prev[i] != curr[i] {
			return i, curr[i], true
		}
	}

	return 0, entity.Empty, false
}

// canPlay - checks if the cell is free and the game is not decided yet.
func canPlay(board entity.Board, cell int) bool {
	if board[cell] != entity.Empty {
		return false
	}

	_, won := board.Winner()

	return !won
}

func validateCursor(history History, currentMove int) error {
	if len(history) == 0 {
		return apperror.ErrEmptyHistory
	}

	if _, err := Jump(currentMove, len(history)); err != nil {
		return err
	}

	return nil
}
