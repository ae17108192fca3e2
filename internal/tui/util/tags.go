package util

import (
	"strconv"

	"notepad/internal/tui/state"
)

// ComputeTags calculates the status chips for the editor state.
//
// The returned slice preserves a stable order:
//   Modified, Selected, Lines, Chars, Font, Color
//
// Rules:
// - Modified appears when the buffer differs from the last opened/saved text.
// - Selected appears only with an active selection and counts its runes.
// - Lines, Chars, Font and Color are always included.
func ComputeTags(s state.EditorState) []state.Tag {
	tags := make([]state.Tag, 0, 6)

	if s.Modified() {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	if s.Doc.HasSelection() {
		start, end := s.Doc.Selection()
		tags = append(tags, state.Tag{Kind: state.SELECTED, Value: end - start})
	}
	tags = append(tags, state.Tag{Kind: state.LINES, Value: s.Doc.LineCount()})
	tags = append(tags, state.Tag{Kind: state.CHARS, Value: s.Doc.Len()})
	tags = append(tags, state.Tag{Kind: state.FONT, Text: FontLabel(s.Style)})
	tags = append(tags, state.Tag{Kind: state.COLOR, Text: s.Style.Color})

	return tags
}

// FontLabel renders a style's font as "Family 16px".
func FontLabel(st state.Style) string {
	return st.Family + " " + strconv.FormatFloat(st.Size, 'f', -1, 64) + "px"
}
