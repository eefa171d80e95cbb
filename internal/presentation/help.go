package presentation

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const helpWordWrap = 72

// HelpText lists the interactive commands.
const HelpText = `# Tic-tac-toe

Cells are numbered 0 to 8, left to right and top to bottom.

| Command | Effect |
|---|---|
| ` + "`play <cell>`" + ` or ` + "`<cell>`" + ` | place the next mark |
| ` + "`jump <move>`" + ` | show an earlier or later board |
| ` + "`moves`" + ` | list every move of the game |
| ` + "`board`" + ` | print the current board |
| ` + "`restart`" + ` | start a new game |
| ` + "`help`" + ` | show this text |
| ` + "`quit`" + ` | leave the game |

Playing a move after a jump discards every move that came after that board.
`

// HelpRenderer renders markdown help through glamour.
type HelpRenderer struct {
	renderer *glamour.TermRenderer
}

// NewHelpRenderer - colored picks the auto style, otherwise the plain notty style.
func NewHelpRenderer(colored bool) (*HelpRenderer, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if colored {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(helpWordWrap))
	if err != nil {
		return nil, fmt.Errorf("failed to create help renderer: %w", err)
	}

	return &HelpRenderer{renderer: renderer}, nil
}

func (that *HelpRenderer) Render(markdown string) (string, error) {
	out, err := that.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render help: %w", err)
	}

	return out, nil
}
