package state

// TagKind enumerates the status chips shown next to the status line.
type TagKind int

const (
	// Stable ordering for display: Modified, Selected, Lines, Chars, Font, Color
	MODIFIED TagKind = iota
	SELECTED
	LINES
	CHARS
	FONT
	COLOR
)

// Tag represents a single status chip. Value is used for numeric counters;
// Text carries the label for font and colour chips.
type Tag struct {
	Kind  TagKind
	Value int
	Text  string
}
