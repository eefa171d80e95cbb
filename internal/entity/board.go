package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

const (
	BoardSide  = 3
	BoardCells = BoardSide * BoardSide
)

// WinCombos lists every winning triple in scan order:
// rows top to bottom, columns left to right, then the two diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a snapshot of the grid in row-major order.
type Board [BoardCells]Mark

func NewBoard() Board {
	return Board{}
}

// ValidateCell - checks that the cell index is on the board.
func ValidateCell(cell int) error {
	if cell < 0 || cell >= BoardCells {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return nil
}

// Winner - returns the mark of the first complete triple in scan order.
func (that Board) Winner() (Mark, bool) {
	line, ok := that.WinningLine()
	if !ok {
		return Empty, false
	}

	return that[line[0]], true
}

// WinningLine - returns the first triple holding three equal non-empty marks.
func (that Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// IsDraw - reports a full board without a winner.
func (that Board) IsDraw() bool {
	if _, ok := that.Winner(); ok {
		return false
	}

	return that.IsFull()
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardCells)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// String - compact form, rows separated by slashes, empty cells as dots.
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%BoardSide == 0 {
			sb.WriteByte('/')
		}

		if cell == Empty {
			sb.WriteByte('.')
			continue
		}

		sb.WriteString(cell.String())
	}

	return sb.String()
}
