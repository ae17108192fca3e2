package state

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Resize records the viewport size of the editing surface.
func Resize(s EditorState, width, height int) EditorState {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.Width = width
	s.Height = height
	return ScrollToCursor(s)
}

// ScrollToCursor adjusts ScrollV/ScrollH so the cursor is inside the viewport.
// ScrollH counts runes while Width counts cells, so wide runes take two.
func ScrollToCursor(s EditorState) EditorState {
	line, col := s.Doc.LineCol(s.Doc.Cursor)
	if s.Height > 0 {
		if line < s.ScrollV {
			s.ScrollV = line
		} else if line >= s.ScrollV+s.Height {
			s.ScrollV = line - s.Height + 1
		}
	}
	if s.Width > 0 {
		if col < s.ScrollH {
			s.ScrollH = col
		} else {
			row := s.Doc.Text[s.Doc.Cursor-col : s.Doc.Cursor]
			cur := 1
			if s.Doc.Cursor < len(s.Doc.Text) && s.Doc.Text[s.Doc.Cursor] != '\n' {
				cur = CellWidth(s.Doc.Text[s.Doc.Cursor])
			}
			used := 0
			for _, r := range row[s.ScrollH:] {
				used += CellWidth(r)
			}
			for s.ScrollH < col && used+cur > s.Width {
				used -= CellWidth(row[s.ScrollH])
				s.ScrollH++
			}
		}
	}
	return s
}

// CellWidth is the number of terminal cells r takes in the editing surface.
// Tabs and zero-width runes are drawn as a single space.
func CellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Edit applies a document operation, drops the status notice and keeps the
// cursor visible.
func Edit(s EditorState, op func(Document) Document) EditorState {
	s.Doc = op(s.Doc)
	s.Notice = ""
	return ScrollToCursor(s)
}

// Opened replaces the buffer wholesale with text read from disk.
func Opened(s EditorState, text string) EditorState {
	s.Doc = NewDocument(text)
	s.Baseline = text
	s.ScrollV, s.ScrollH = 0, 0
	return s
}

// Saved marks the current buffer as the baseline.
func Saved(s EditorState) EditorState {
	s.Baseline = s.Doc.String()
	return s
}

// SetFont validates and applies a font choice. size is the raw text typed
// by the user; it must parse as a positive finite number.
func SetFont(s EditorState, family, size string) (EditorState, error) {
	if !validFamily(family) {
		return s, fmt.Errorf("unknown font family %q", family)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(size), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return s, fmt.Errorf("invalid font size %q", size)
	}
	s.Style.Family = family
	s.Style.Size = v
	return s, nil
}

// SetColor validates and applies a text colour given as "#RRGGBB", "RRGGBB"
// or the short "#RGB" form.
func SetColor(s EditorState, input string) (EditorState, error) {
	hex, err := NormalizeColor(input)
	if err != nil {
		return s, err
	}
	s.Style.Color = hex
	return s, nil
}

var hexColor = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// NormalizeColor returns input as upper-case "#RRGGBB".
func NormalizeColor(input string) (string, error) {
	in := strings.TrimSpace(input)
	// colorful.Hex scans with fmt and accepts malformed digits.
	if !hexColor.MatchString(in) {
		return "", fmt.Errorf("invalid colour %q", input)
	}
	if !strings.HasPrefix(in, "#") {
		in = "#" + in
	}
	c, err := colorful.Hex(in)
	if err != nil {
		return "", fmt.Errorf("invalid colour %q", input)
	}
	return strings.ToUpper(c.Hex()), nil
}

func validFamily(family string) bool {
	for _, f := range Families {
		if f == family {
			return true
		}
	}
	return false
}
