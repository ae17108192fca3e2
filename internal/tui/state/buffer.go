package state

// Document is the editable text with a cursor and an optional selection.
// Offsets are rune indexes in [0, len(Text)]. Anchor is -1 when nothing is
// selected; otherwise the selection spans Anchor..Cursor in either order.
//
// Operations never modify Text in place, so copies of a Document are safe to
// keep.
type Document struct {
	Text   []rune
	Cursor int
	Anchor int
}

// NewDocument returns a document holding text with the cursor at the start.
func NewDocument(text string) Document {
	return Document{Text: []rune(text), Anchor: -1}
}

func (d Document) String() string { return string(d.Text) }

// Len is the length in runes.
func (d Document) Len() int { return len(d.Text) }

// HasSelection reports whether a non-empty selection is active.
func (d Document) HasSelection() bool {
	return d.Anchor >= 0 && d.Anchor != d.Cursor
}

// Selection returns the selected range as start <= end. Without a selection
// both equal the cursor.
func (d Document) Selection() (start, end int) {
	if !d.HasSelection() {
		return d.Cursor, d.Cursor
	}
	if d.Anchor < d.Cursor {
		return d.Anchor, d.Cursor
	}
	return d.Cursor, d.Anchor
}

// SelectedText returns the selected text, or "".
func (d Document) SelectedText() string {
	start, end := d.Selection()
	return string(d.Text[start:end])
}

// Insert replaces the selection (if any) with s and puts the cursor after it.
func (d Document) Insert(s string) Document {
	start, end := d.Selection()
	ins := []rune(s)
	text := make([]rune, 0, len(d.Text)-(end-start)+len(ins))
	text = append(text, d.Text[:start]...)
	text = append(text, ins...)
	text = append(text, d.Text[end:]...)
	return Document{Text: text, Cursor: start + len(ins), Anchor: -1}
}

// DeleteSelection removes the selected text.
func (d Document) DeleteSelection() Document {
	if !d.HasSelection() {
		return d
	}
	return d.Insert("")
}

// Backspace deletes the selection, or the rune before the cursor.
func (d Document) Backspace() Document {
	if d.HasSelection() {
		return d.DeleteSelection()
	}
	if d.Cursor == 0 {
		return d.clearAnchor()
	}
	return Document{Text: d.Text, Cursor: d.Cursor - 1, Anchor: d.Cursor}.Insert("")
}

// Delete deletes the selection, or the rune under the cursor.
func (d Document) Delete() Document {
	if d.HasSelection() {
		return d.DeleteSelection()
	}
	if d.Cursor >= len(d.Text) {
		return d.clearAnchor()
	}
	return Document{Text: d.Text, Cursor: d.Cursor, Anchor: d.Cursor + 1}.Insert("")
}

// SelectAll selects the whole text with the cursor at the end.
func (d Document) SelectAll() Document {
	d.Anchor = 0
	d.Cursor = len(d.Text)
	return d
}

func (d Document) clearAnchor() Document {
	d.Anchor = -1
	return d
}

// MoveTo places the cursor at off, clamped to the text. With extend the
// selection grows from the current anchor (or the old cursor); without it
// the selection is dropped.
func (d Document) MoveTo(off int, extend bool) Document {
	if off < 0 {
		off = 0
	}
	if off > len(d.Text) {
		off = len(d.Text)
	}
	if extend {
		if d.Anchor < 0 {
			d.Anchor = d.Cursor
		}
	} else {
		d.Anchor = -1
	}
	d.Cursor = off
	return d
}

// Left moves one rune left. Without extend an active selection collapses to
// its start.
func (d Document) Left(extend bool) Document {
	if !extend && d.HasSelection() {
		start, _ := d.Selection()
		return d.MoveTo(start, false)
	}
	return d.MoveTo(d.Cursor-1, extend)
}

// Right moves one rune right. Without extend an active selection collapses
// to its end.
func (d Document) Right(extend bool) Document {
	if !extend && d.HasSelection() {
		_, end := d.Selection()
		return d.MoveTo(end, false)
	}
	return d.MoveTo(d.Cursor+1, extend)
}

// Up moves to the same column on the previous line, clamped to its length.
func (d Document) Up(extend bool) Document {
	line, col := d.LineCol(d.Cursor)
	if line == 0 {
		return d.MoveTo(0, extend)
	}
	return d.MoveTo(d.Offset(line-1, col), extend)
}

// Down moves to the same column on the next line, clamped to its length.
func (d Document) Down(extend bool) Document {
	line, col := d.LineCol(d.Cursor)
	if line >= d.LineCount()-1 {
		return d.MoveTo(len(d.Text), extend)
	}
	return d.MoveTo(d.Offset(line+1, col), extend)
}

// Home moves to the start of the cursor's line.
func (d Document) Home(extend bool) Document {
	line, _ := d.LineCol(d.Cursor)
	return d.MoveTo(d.Offset(line, 0), extend)
}

// End moves to the end of the cursor's line.
func (d Document) End(extend bool) Document {
	line, _ := d.LineCol(d.Cursor)
	return d.MoveTo(d.lineEnd(d.Offset(line, 0)), extend)
}

// Top moves to the start of the document.
func (d Document) Top(extend bool) Document { return d.MoveTo(0, extend) }

// Bottom moves to the end of the document.
func (d Document) Bottom(extend bool) Document { return d.MoveTo(len(d.Text), extend) }

// LineCount is the number of lines; an empty document and a document ending
// in "\n" both count the empty last line.
func (d Document) LineCount() int {
	n := 1
	for _, r := range d.Text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Lines splits the text on "\n".
func (d Document) Lines() []string {
	lines := make([]string, 0, d.LineCount())
	start := 0
	for i, r := range d.Text {
		if r == '\n' {
			lines = append(lines, string(d.Text[start:i]))
			start = i + 1
		}
	}
	return append(lines, string(d.Text[start:]))
}

// LineCol converts an offset to a zero-based line and rune column.
func (d Document) LineCol(off int) (line, col int) {
	if off > len(d.Text) {
		off = len(d.Text)
	}
	start := 0
	for i := 0; i < off; i++ {
		if d.Text[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, off - start
}

// Offset converts a line and column to an offset, clamping both.
func (d Document) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	off := 0
	for l := 0; l < line; l++ {
		nl := d.lineEnd(off)
		if nl >= len(d.Text) {
			return len(d.Text)
		}
		off = nl + 1
	}
	end := d.lineEnd(off)
	if col < 0 {
		col = 0
	}
	if off+col > end {
		return end
	}
	return off + col
}

// lineEnd returns the offset of the "\n" ending the line that starts at or
// contains off, or len(Text) for the last line.
func (d Document) lineEnd(off int) int {
	for i := off; i < len(d.Text); i++ {
		if d.Text[i] == '\n' {
			return i
		}
	}
	return len(d.Text)
}
