package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"notepad/internal/tui/state"
)

type Editor struct {
	NoColor bool
}

func NewEditor(noColor bool) Editor { return Editor{NoColor: noColor} }

type cellClass int

const (
	plain cellClass = iota
	selected
	cursor
)

// View renders the visible part of the document: s.Height lines starting at
// ScrollV, each clipped to s.Width cells from ScrollH. The cursor is drawn
// only when focused.
func (e Editor) View(s state.EditorState, focused bool) string {
	width, height := s.Width, s.Height
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	styles := e.styles(s.Style)
	selStart, selEnd := s.Doc.Selection()

	starts := lineStarts(s.Doc.Text)
	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		li := s.ScrollV + i
		if li >= len(starts) {
			rows = append(rows, styles[plain].Render(strings.Repeat(" ", width)))
			continue
		}
		start := starts[li]
		end := len(s.Doc.Text)
		if li+1 < len(starts) {
			end = starts[li+1] - 1
		}
		rows = append(rows, e.renderLine(s, styles, start, end, selStart, selEnd, focused, width))
	}
	return strings.Join(rows, "\n")
}

func (e Editor) renderLine(s state.EditorState, styles map[cellClass]lipgloss.Style, start, end, selStart, selEnd int, focused bool, width int) string {
	var b strings.Builder
	var run strings.Builder
	runClass := plain
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(styles[runClass].Render(run.String()))
			run.Reset()
		}
	}
	used := 0
	// off == end is the newline (or end of text) position, where a cursor
	// may still sit.
	for off := start + s.ScrollH; off <= end && used < width; off++ {
		r := ' '
		if off < end {
			r = s.Doc.Text[off]
			if r == '\t' || runewidth.RuneWidth(r) == 0 {
				r = ' '
			}
		}
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		class := plain
		switch {
		case focused && off == s.Doc.Cursor:
			class = cursor
		case off >= selStart && off < selEnd:
			class = selected
		}
		if off == end && class == plain {
			break
		}
		if class != runClass {
			flush()
			runClass = class
		}
		run.WriteRune(r)
		used += w
	}
	flush()
	if used < width {
		b.WriteString(styles[plain].Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

// styles maps the cosmetic style onto terminal attributes. The terminal has
// no fonts, so the family picks bold/italic/underline/faint instead.
func (e Editor) styles(st state.Style) map[cellClass]lipgloss.Style {
	base := lipgloss.NewStyle()
	switch st.Family {
	case "Bold":
		base = base.Bold(true)
	case "Italic":
		base = base.Italic(true)
	case "Underline":
		base = base.Underline(true)
	case "Faint":
		base = base.Faint(true)
	case "Bold Italic":
		base = base.Bold(true).Italic(true)
	}
	if e.NoColor {
		return map[cellClass]lipgloss.Style{
			plain:    base,
			selected: base.Reverse(true),
			cursor:   base.Reverse(true).Underline(true),
		}
	}
	fg := lipgloss.Color(st.Color)
	bg := lipgloss.Color(st.Background)
	return map[cellClass]lipgloss.Style{
		plain:    base.Foreground(fg).Background(bg),
		selected: base.Foreground(bg).Background(fg),
		cursor:   base.Foreground(bg).Background(lipgloss.Color("#DCDDE1")),
	}
}

func lineStarts(text []rune) []int {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
