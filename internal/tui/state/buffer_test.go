package state

import "testing"

func TestInsertReplacesSelection(t *testing.T) {
	d := NewDocument("hello world")
	d.Anchor, d.Cursor = 6, 11
	d = d.Insert("there")
	if d.String() != "hello there" { t.Fatalf("got %q", d.String()) }
	if d.Cursor != 11 || d.HasSelection() { t.Fatalf("cursor=%d anchor=%d", d.Cursor, d.Anchor) }
}

func TestInsertDoesNotAlias(t *testing.T) {
	orig := NewDocument("abc")
	orig.Cursor = 1
	_ = orig.Insert("X")
	if orig.String() != "abc" { t.Fatalf("original mutated: %q", orig.String()) }
}

func TestBackspaceAndDelete(t *testing.T) {
	d := NewDocument("abc")
	d.Cursor = 2
	d = d.Backspace()
	if d.String() != "ac" || d.Cursor != 1 { t.Fatalf("backspace: %q cursor=%d", d.String(), d.Cursor) }
	d = d.Delete()
	if d.String() != "a" || d.Cursor != 1 { t.Fatalf("delete: %q cursor=%d", d.String(), d.Cursor) }
	d = d.Delete()
	if d.String() != "a" { t.Fatalf("delete at end changed text: %q", d.String()) }
	d = d.Top(false).Backspace()
	if d.String() != "a" { t.Fatalf("backspace at start changed text: %q", d.String()) }
}

func TestBackspaceRemovesSelection(t *testing.T) {
	d := NewDocument("abcdef").SelectAll()
	d = d.Backspace()
	if d.String() != "" || d.Cursor != 0 { t.Fatalf("got %q cursor=%d", d.String(), d.Cursor) }
}

func TestSelectionOrderIndependent(t *testing.T) {
	d := NewDocument("abcdef")
	d.Anchor, d.Cursor = 4, 1
	start, end := d.Selection()
	if start != 1 || end != 4 { t.Fatalf("selection %d..%d", start, end) }
	if d.SelectedText() != "bcd" { t.Fatalf("selected %q", d.SelectedText()) }
}

func TestShiftMovementExtendsSelection(t *testing.T) {
	d := NewDocument("abc\ndef")
	d = d.Right(true).Right(true)
	if d.SelectedText() != "ab" { t.Fatalf("selected %q", d.SelectedText()) }
	d = d.Down(true)
	if d.SelectedText() != "abc\nde" { t.Fatalf("selected %q", d.SelectedText()) }
	d = d.Left(false)
	if d.HasSelection() || d.Cursor != 0 { t.Fatalf("expected collapse to start, cursor=%d", d.Cursor) }
}

func TestRightCollapsesToEnd(t *testing.T) {
	d := NewDocument("abcdef")
	d.Anchor, d.Cursor = 4, 1
	d = d.Right(false)
	if d.HasSelection() || d.Cursor != 4 { t.Fatalf("cursor=%d", d.Cursor) }
}

func TestVerticalMovementClampsColumn(t *testing.T) {
	d := NewDocument("long line\nab\nlonger line")
	d = d.End(false)
	d = d.Down(false)
	if line, col := d.LineCol(d.Cursor); line != 1 || col != 2 { t.Fatalf("at %d:%d", line, col) }
	d = d.Down(false)
	if line, col := d.LineCol(d.Cursor); line != 2 || col != 2 { t.Fatalf("at %d:%d", line, col) }
	d = d.Down(false)
	if d.Cursor != d.Len() { t.Fatalf("down on last line should go to end") }
	d = d.Top(false).Up(false)
	if d.Cursor != 0 { t.Fatalf("up on first line should go to start") }
}

func TestHomeEnd(t *testing.T) {
	d := NewDocument("one\ntwo")
	d.Cursor = 5
	if d.Home(false).Cursor != 4 { t.Fatalf("home") }
	if d.End(false).Cursor != 7 { t.Fatalf("end") }
}

func TestLinesAndCounts(t *testing.T) {
	d := NewDocument("a\nb\n")
	if d.LineCount() != 3 { t.Fatalf("line count %d", d.LineCount()) }
	lines := d.Lines()
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "b" || lines[2] != "" { t.Fatalf("lines %q", lines) }
	if NewDocument("").LineCount() != 1 { t.Fatalf("empty doc has one line") }
}

func TestOffsetClamps(t *testing.T) {
	d := NewDocument("ab\ncd")
	if d.Offset(5, 0) != d.Len() { t.Fatalf("line past end") }
	if d.Offset(0, 10) != 2 { t.Fatalf("col past end") }
	if d.Offset(-1, 3) != 0 { t.Fatalf("negative line") }
	if d.Offset(1, 1) != 4 { t.Fatalf("1:1 = %d", d.Offset(1, 1)) }
}

func TestMultibyteRunes(t *testing.T) {
	d := NewDocument("héllo 世界").Bottom(false)
	d = d.Backspace()
	if d.String() != "héllo 世" { t.Fatalf("got %q", d.String()) }
}
