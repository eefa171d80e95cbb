package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

func TestBoard_Winner(t *testing.T) {
	t.Run("Returns the mark for every winning triple", func(t *testing.T) {
		for _, mark := range []Mark{X, O} {
			for _, combo := range WinCombos {
				// Given: a board where a single triple holds the same mark
				board := NewBoard()
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: determining the winner
				winner, ok := board.Winner()

				// Then: the mark of the triple is reported
				require.True(t, ok, "combo %v", combo)
				assert.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Returns no winner for the empty board", func(t *testing.T) {
		// Given: the initial board
		board := NewBoard()

		// When: determining the winner
		winner, ok := board.Winner()

		// Then: there is no winner
		assert.False(t, ok)
		assert.Equal(t, Empty, winner)
	})

	t.Run("Returns no winner for a mixed triple", func(t *testing.T) {
		// Given: a top row with two different marks
		board := Board{
			X, X, O,
			Empty, O, Empty,
			Empty, Empty, X,
		}

		// When: determining the winner
		_, ok := board.Winner()

		// Then: there is no winner
		assert.False(t, ok)
	})

	t.Run("Reports the first triple in scan order when several lines are complete", func(t *testing.T) {
		// Given: an unreachable board with a complete O column and a complete X row
		board := Board{
			O, X, X,
			O, X, X,
			O, X, X,
		}

		// When: looking up the winning line
		line, ok := board.WinningLine()
		winner, _ := board.Winner()

		// Then: no row is complete, so the first column is reported
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 3, 6}, line)
		assert.Equal(t, O, winner)
	})

	t.Run("Rows take priority over diagonals", func(t *testing.T) {
		// Given: an unreachable board with a complete bottom row and a complete diagonal
		board := Board{
			X, O, O,
			O, X, O,
			X, X, X,
		}

		// When: looking up the winning line
		line, ok := board.WinningLine()

		// Then: the bottom row is reported
		require.True(t, ok)
		assert.Equal(t, [3]int{6, 7, 8}, line)
	})
}

func TestBoard_IsDraw(t *testing.T) {
	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		// Given: a full board with alternating marks and no complete triple
		board := Board{
			X, O, X,
			X, O, O,
			O, X, X,
		}

		// When: checking the result
		_, hasWinner := board.Winner()

		// Then: there is no winner and the board is a draw
		assert.False(t, hasWinner)
		assert.True(t, board.IsFull())
		assert.True(t, board.IsDraw())
	})

	t.Run("Full board with a winner is not a draw", func(t *testing.T) {
		// Given: a full board where X owns the left diagonal
		board := Board{
			X, O, O,
			O, X, X,
			O, X, X,
		}

		// Then: it is not a draw
		assert.True(t, board.IsFull())
		assert.False(t, board.IsDraw())
	})

	t.Run("Board in progress is not a draw", func(t *testing.T) {
		// Given: a board with empty cells
		board := Board{
			X, O, Empty,
			Empty, X, Empty,
			Empty, Empty, O,
		}

		// Then: it is neither full nor a draw
		assert.False(t, board.IsFull())
		assert.False(t, board.IsDraw())
	})
}

func TestBoard_Helpers(t *testing.T) {
	// Given: a board with two X and one O
	board := Board{
		X, Empty, Empty,
		Empty, O, Empty,
		Empty, Empty, X,
	}

	// Then: counts and empty cells reflect the marks
	assert.Equal(t, 2, board.Count(X))
	assert.Equal(t, 1, board.Count(O))
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, board.EmptyCells())
	assert.Equal(t, "X../.O./..X", board.String())
}

func TestValidateCell(t *testing.T) {
	t.Run("Accepts every index on the board", func(t *testing.T) {
		for cell := 0; cell < BoardCells; cell++ {
			require.NoError(t, ValidateCell(cell))
		}
	})

	t.Run("Rejects negative index", func(t *testing.T) {
		assert.ErrorIs(t, ValidateCell(-1), apperror.ErrInvalidCell)
	})

	t.Run("Rejects index past the board", func(t *testing.T) {
		assert.ErrorIs(t, ValidateCell(9), apperror.ErrInvalidCell)
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "", Empty.String())

	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())

	assert.True(t, Empty.IsEmpty())
	assert.False(t, X.IsEmpty())
}
