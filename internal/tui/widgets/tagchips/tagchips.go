package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// View renders status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODIFIED:
		return "Modified"
	case state.SELECTED:
		return fmt.Sprintf("Sel %d", t.Value)
	case state.LINES:
		return fmt.Sprintf("Lines %d", t.Value)
	case state.CHARS:
		return fmt.Sprintf("Chars %d", t.Value)
	case state.FONT:
		return t.Text
	case state.COLOR:
		return t.Text
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch t.Kind {
	case state.MODIFIED:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.SELECTED:
		return base.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
	case state.LINES, state.CHARS:
		return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
	case state.FONT:
		return base.Background(p.Accent).Foreground(lipgloss.Color("#FFFFFF"))
	case state.COLOR:
		// the chip shows the chosen colour itself
		return base.Background(lipgloss.Color(t.Text)).Foreground(lipgloss.Color("#111111"))
	default:
		return base
	}
}
