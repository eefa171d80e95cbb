package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	colorX     = "#f472b6"
	colorO     = "#818cf8"
	colorEmpty = "#6b7280"
	colorMuted = "#9ca3af"
)

const rowSeparator = "---+---+---"

// ParseProfile - maps a config value to a termenv profile. "auto" detects from the environment.
func ParseProfile(name string) (termenv.Profile, bool, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.Ascii, true, nil
	case "ascii", "none":
		return termenv.Ascii, false, nil
	case "ansi":
		return termenv.ANSI, false, nil
	case "ansi256":
		return termenv.ANSI256, false, nil
	case "truecolor":
		return termenv.TrueColor, false, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", name)
	}
}

// BoardRenderer draws boards, status lines and move lists for a terminal.
type BoardRenderer struct {
	out *termenv.Output
}

// NewBoardRenderer - renderer writing for w. When auto is set the colour
// profile is detected from w and the environment.
func NewBoardRenderer(w io.Writer, profile termenv.Profile, auto bool) *BoardRenderer {
	if auto {
		return &BoardRenderer{out: termenv.NewOutput(w)}
	}

	return &BoardRenderer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (that *BoardRenderer) Colored() bool {
	return that.out.Profile != termenv.Ascii
}

// Board - 3x3 grid. Empty cells show their index, the winning line is bold.
func (that *BoardRenderer) Board(board entity.Board) string {
	line, won := board.WinningLine()
	highlight := make(map[int]bool, len(line))
	if won {
		for _, cell := range line {
			highlight[cell] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}

		cells := make([]string, 0, entity.BoardSide)
		for col := 0; col < entity.BoardSide; col++ {
			i := row*entity.BoardSide + col
			cells = append(cells, " "+that.cell(i, board[i], highlight[i])+" ")
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *BoardRenderer) cell(index int, mark entity.Mark, highlight bool) string {
	var style termenv.Style

	switch mark {
	case entity.X:
		style = that.out.String(mark.String()).Foreground(that.out.Color(colorX))
	case entity.O:
		style = that.out.String(mark.String()).Foreground(that.out.Color(colorO))
	default:
		return that.out.String(strconv.Itoa(index)).Foreground(that.out.Color(colorEmpty)).Faint().String()
	}

	if highlight {
		style = style.Bold().Underline()
	}

	return style.String()
}

// Status - status line, the winner is printed bold.
func (that *BoardRenderer) Status(board entity.Board, currentMove int) string {
	status := Status(board, currentMove)
	if _, ok := board.Winner(); ok {
		return that.out.String(status).Bold().String()
	}

	return status
}

// Moves - numbered move list, the current entry is muted.
func (that *BoardRenderer) Moves(entries []MoveEntry) string {
	var sb strings.Builder

	for _, entry := range entries {
		text := entry.Label
		if entry.HasCell {
			text += fmt.Sprintf(" (%s at %d)", entry.Mark, entry.Cell)
		}

		if entry.Current {
			text = that.out.String(text).Foreground(that.out.Color(colorMuted)).Italic().String()
		}

		fmt.Fprintf(&sb, "%2d. %s\n", entry.Move, text)
	}

	return sb.String()
}
