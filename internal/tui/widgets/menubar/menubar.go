// Package menubar renders the menu bar, its drop-downs and the toolbar, and
// maps mouse columns back to them.
package menubar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
	"notepad/internal/tui/views/menus"
)

type MenuBar struct {
	NoColor bool
}

func NewMenuBar(noColor bool) MenuBar { return MenuBar{NoColor: noColor} }

// Span is a half-open column range [Start, End).
type Span struct{ Start, End int }

func (s Span) contains(x int) bool { return x >= s.Start && x < s.End }

// TitleSpans returns the columns occupied by each menu title.
func TitleSpans() []Span {
	spans := make([]Span, 0, len(menus.Bar))
	x := 0
	for _, m := range menus.Bar {
		w := lipgloss.Width(m.Title) + 2
		spans = append(spans, Span{x, x + w})
		x += w
	}
	return spans
}

// TitleAt returns the menu under column x, or -1.
func TitleAt(x int) int {
	for i, sp := range TitleSpans() {
		if sp.contains(x) {
			return i
		}
	}
	return -1
}

// ButtonSpans returns the columns occupied by each toolbar button.
func ButtonSpans() []Span {
	spans := make([]Span, 0, len(menus.Toolbar))
	x := 1
	for _, c := range menus.Toolbar {
		w := lipgloss.Width(c.String()) + 4
		spans = append(spans, Span{x, x + w})
		x += w + 1
	}
	return spans
}

// ButtonAt returns the toolbar command under column x, or CmdNone.
func ButtonAt(x int) state.Command {
	for i, sp := range ButtonSpans() {
		if sp.contains(x) {
			return menus.Toolbar[i]
		}
	}
	return state.CmdNone
}

func (b MenuBar) barStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if !b.NoColor {
		p := util.DefaultPalette()
		st = st.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
	}
	return st
}

func (b MenuBar) activeStyle() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if b.NoColor {
		return st.Reverse(true)
	}
	p := util.DefaultPalette()
	return st.Background(p.Accent).Foreground(lipgloss.Color("#FFFFFF"))
}

// View renders the title row; open is the index of the open menu or -1.
func (b MenuBar) View(width, open int) string {
	var sb strings.Builder
	for i, m := range menus.Bar {
		label := " " + m.Title + " "
		if i == open {
			sb.WriteString(b.activeStyle().Render(label))
		} else {
			sb.WriteString(b.barStyle().Render(label))
		}
	}
	return b.fill(sb.String(), width)
}

// DropdownHeight is the number of rows the open menu takes, border included.
func DropdownHeight(open int) int {
	if open < 0 || open >= len(menus.Bar) {
		return 0
	}
	return len(menus.Bar[open].Items) + 2
}

// ItemAt maps a row inside the open drop-down (0 = top border) and a column
// to an item index, or -1.
func ItemAt(open, row, x int) int {
	if open < 0 || open >= len(menus.Bar) {
		return -1
	}
	idx := row - 1
	if idx < 0 || idx >= len(menus.Bar[open].Items) {
		return -1
	}
	start := TitleSpans()[open].Start
	width := lipgloss.Width(menus.RenderOptions(menus.Bar[open])[0]) + 4
	if x < start || x >= start+width {
		return -1
	}
	return idx
}

// Dropdown renders the open menu with sel highlighted, indented under its
// title.
func (b MenuBar) Dropdown(open, sel int) string {
	if open < 0 || open >= len(menus.Bar) {
		return ""
	}
	opts := menus.RenderOptions(menus.Bar[open])
	lines := make([]string, len(opts))
	for i, o := range opts {
		o = " " + o + " "
		if i == sel {
			lines[i] = b.activeStyle().Render(o)
		} else {
			lines[i] = o
		}
	}
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if !b.NoColor {
		box = box.BorderForeground(util.DefaultPalette().Primary)
	}
	indent := strings.Repeat(" ", TitleSpans()[open].Start)
	rendered := strings.Split(box.Render(strings.Join(lines, "\n")), "\n")
	for i := range rendered {
		rendered[i] = indent + rendered[i]
	}
	return strings.Join(rendered, "\n")
}

// Toolbar renders the Open/Save buttons.
func (b MenuBar) Toolbar(width int) string {
	var sb strings.Builder
	sb.WriteString(b.barStyle().Render(" "))
	for i, c := range menus.Toolbar {
		if i > 0 {
			sb.WriteString(b.barStyle().Render(" "))
		}
		sb.WriteString(b.barStyle().Bold(true).Render("[ " + c.String() + " ]"))
	}
	return b.fill(sb.String(), width)
}

func (b MenuBar) fill(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		s += b.barStyle().Render(strings.Repeat(" ", width-w))
	}
	return s
}
