package statusbar

import (
	"fmt"
	"strings"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
	chips "notepad/internal/tui/widgets/tagchips"
)

type StatusBar struct {
	NoColor bool
}

func NewStatusBar(noColor bool) StatusBar { return StatusBar{NoColor: noColor} }

// View composes a concise status line: cursor position, chips, notice.
func (b StatusBar) View(s state.EditorState) string {
	line, col := s.Doc.LineCol(s.Doc.Cursor)
	parts := []string{
		fmt.Sprintf("Ln %d, Col %d", line+1, col+1),
		chips.View(util.ComputeTags(s), b.NoColor),
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
