// Package alert renders modal message boxes.
package alert

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// Box renders an alert as a bordered panel of at most maxWidth cells.
type Box struct {
	NoColor bool
}

func NewBox(noColor bool) Box { return Box{NoColor: noColor} }

// DefaultTitle returns the window title used when an alert has none.
func DefaultTitle(kind state.AlertKind) string {
	if kind == state.Error {
		return "Error"
	}
	return "Information"
}

func (b Box) View(a state.Alert, maxWidth int) string {
	p := util.DefaultPalette()
	title := a.Title
	if title == "" {
		title = DefaultTitle(a.Kind)
	}

	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	titleStyle := lipgloss.NewStyle().Bold(true)
	body := lipgloss.NewStyle()
	if !b.NoColor {
		accent := p.Primary
		if a.Kind == state.Error {
			accent = p.Danger
		}
		border = border.BorderForeground(accent).Background(p.Surface)
		titleStyle = titleStyle.Foreground(accent).Background(p.Surface)
		body = body.Foreground(p.Text).Background(p.Surface)
	}
	// wrap long messages (error texts carry full paths)
	if inner := maxWidth - 6; inner > 8 && lipgloss.Width(a.Text) > inner {
		body = body.Width(inner)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title) + "\n")
	if a.Header != "" {
		sb.WriteString(titleStyle.Render(a.Header) + "\n")
	}
	sb.WriteString("\n" + body.Render(a.Text) + "\n\n")
	sb.WriteString(lipgloss.NewStyle().Faint(true).Render("enter/esc: close"))
	return border.Render(sb.String())
}
