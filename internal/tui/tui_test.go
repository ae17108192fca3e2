package tui

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/clipboard"
	"notepad/internal/docio"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

type fakeStore struct {
	files  map[string]string
	opened []string
	saved  []string
}

func (f *fakeStore) Open(path string) (string, error) {
	f.opened = append(f.opened, path)
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return text, nil
}

func (f *fakeStore) Save(path, text string) error {
	f.saved = append(f.saved, path)
	f.files[path] = text
	return nil
}

func newTestModel(t *testing.T) (model, *fakeStore, *clipboard.Memory) {
	t.Helper()
	store := &fakeStore{files: map[string]string{}}
	clip := &clipboard.Memory{}
	m := newModel(Options{
		Env: state.Env{
			Clipboard: clip,
			Store:     store,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		StartDir: t.TempDir(),
		NoColor:  true,
	})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store, clip
}

func send(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func sendCmd(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	if strings.HasPrefix(s, "alt+") {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s[4:]), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m model, s string) model {
	for _, r := range s {
		if r == '\n' {
			m = send(m, keyMsg("enter"))
			continue
		}
		m = send(m, keyMsg(string(r)))
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingEditsBuffer(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "hello\nworld")
	m = send(m, keyMsg("backspace"))
	if got := m.st.Doc.String(); got != "hello\nworl" {
		t.Fatalf("buffer %q", got)
	}
	if !m.st.Modified() {
		t.Fatalf("typing should mark the buffer modified")
	}
}

func TestSelectAllCopy(t *testing.T) {
	m, _, clip := newTestModel(t)
	m = typeText(m, "abc")
	m = send(m, keyMsg("ctrl+a"))
	m = send(m, keyMsg("ctrl+c"))
	if got, _ := clip.ReadAll(); got != "abc" {
		t.Fatalf("clipboard %q", got)
	}
	if m.st.Doc.String() != "abc" {
		t.Fatalf("copy must not change the buffer")
	}
}

func TestCutPaste(t *testing.T) {
	m, _, clip := newTestModel(t)
	m = typeText(m, "abcd")
	m = send(m, keyMsg("shift+left"))
	m = send(m, keyMsg("shift+left"))
	m = send(m, keyMsg("ctrl+x"))
	if m.st.Doc.String() != "ab" {
		t.Fatalf("after cut %q", m.st.Doc.String())
	}
	if got, _ := clip.ReadAll(); got != "cd" {
		t.Fatalf("clipboard %q", got)
	}
	m = send(m, keyMsg("ctrl+v"))
	m = send(m, keyMsg("ctrl+v"))
	if m.st.Doc.String() != "abcdcd" {
		t.Fatalf("after paste %q", m.st.Doc.String())
	}
}

func TestOpenCancelKeepsBuffer(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = typeText(m, "draft")
	m = send(m, keyMsg("ctrl+o"))
	if m.mode != modeOpen {
		t.Fatalf("expected open dialog, got %s", m.mode)
	}
	m = send(m, keyMsg("esc"))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode after cancel, got %s", m.mode)
	}
	if m.st.Doc.String() != "draft" || len(store.opened) != 0 {
		t.Fatalf("cancel must not touch the buffer or disk")
	}
}

func TestSaveCancelWritesNothing(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = typeText(m, "draft")
	m = send(m, keyMsg("ctrl+s"))
	if m.mode != modeSave {
		t.Fatalf("expected save dialog, got %s", m.mode)
	}
	m = send(m, keyMsg("esc"))
	if m.mode != modeEdit || len(store.saved) != 0 {
		t.Fatalf("cancel must not write")
	}
}

func TestSaveWritesAndAlerts(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = typeText(m, "line one\nline two")
	m = send(m, keyMsg("ctrl+s"))
	m = typeText(m, "out.txt")
	m = send(m, keyMsg("enter"))

	want := filepath.Join(m.dir, "out.txt")
	if len(store.saved) != 1 || store.saved[0] != want {
		t.Fatalf("saved %v, want %s", store.saved, want)
	}
	if store.files[want] != "line one\nline two" {
		t.Fatalf("content %q", store.files[want])
	}
	if m.mode != modeAlert || m.alert == nil || m.alert.Text != state.SaveOK {
		t.Fatalf("expected save alert, got %s %+v", m.mode, m.alert)
	}
	if m.st.Modified() {
		t.Fatalf("saved buffer should not be modified")
	}
	m = send(m, keyMsg("enter"))
	if m.mode != modeEdit || m.alert != nil {
		t.Fatalf("enter should dismiss the alert")
	}
}

func TestSavePathIsLiteral(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = typeText(m, "total")
	m = send(m, keyMsg("ctrl+s"))
	m = typeText(m, "price$5.txt")
	m = send(m, keyMsg("enter"))

	want := filepath.Join(m.dir, "price$5.txt")
	if len(store.saved) != 1 || store.saved[0] != want {
		t.Fatalf("saved %v, want %s", store.saved, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NOTES", "elsewhere")
	if got := expandPath("~/a.txt"); got != filepath.Join(home, "a.txt") {
		t.Fatalf("home expansion: %s", got)
	}
	if got := expandPath("/tmp/$NOTES/a.txt"); got != "/tmp/$NOTES/a.txt" {
		t.Fatalf("variables must stay literal: %s", got)
	}
	if got := expandPath("a.txt"); !filepath.IsAbs(got) {
		t.Fatalf("relative path not made absolute: %s", got)
	}
}

// drain runs cmd and feeds the messages it produces back into the model.
func drain(m model, cmd tea.Cmd, depth int) model {
	if cmd == nil || depth == 0 {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(m, c, depth-1)
		}
		return m
	}
	if msg == nil {
		return m
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return m
	}
	m, cmd = sendCmd(m, msg)
	return drain(m, cmd, depth-1)
}

func TestOpenThroughPicker(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.env.Store = docio.FS{}
	if err := os.WriteFile(filepath.Join(m.dir, "notes.txt"), []byte("hello\r\nworld"), 0o644); err != nil {
		t.Fatal(err)
	}
	m = typeText(m, "draft")

	m, cmd := sendCmd(m, keyMsg("ctrl+o"))
	m = drain(m, cmd, 4)
	if m.mode != modeOpen {
		t.Fatalf("expected the picker to stay open, got %s", m.mode)
	}
	m = send(m, keyMsg("enter"))

	if got := m.st.Doc.String(); got != "hello\nworld\n" {
		t.Fatalf("buffer %q", got)
	}
	if m.mode != modeAlert || m.alert == nil || m.alert.Text != state.OpenOK {
		t.Fatalf("expected open alert, got %s %+v", m.mode, m.alert)
	}
	if m.st.Modified() {
		t.Fatalf("freshly opened buffer should not be modified")
	}
}

func TestExitQuits(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := sendCmd(m, keyMsg("ctrl+q"))
	if !isQuit(cmd) {
		t.Fatalf("ctrl+q should quit")
	}
}

func TestMenuKeyboardDispatch(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("alt+f"))
	if m.mode != modeMenu || m.menuOpen != 0 {
		t.Fatalf("alt+f should open File, got %s %d", m.mode, m.menuOpen)
	}
	m = send(m, keyMsg("down"))
	m = send(m, keyMsg("down"))
	m, cmd := sendCmd(m, keyMsg("enter"))
	if !isQuit(cmd) {
		t.Fatalf("File → Exit should quit")
	}
	if m.menuOpen != -1 {
		t.Fatalf("dispatch should close the menu")
	}
}

func TestMenuEscCloses(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("alt+h"))
	// Help has two items: four rows with the border
	if m.st.Height != 17 {
		t.Fatalf("open drop-down should shrink the editor, height %d", m.st.Height)
	}
	m = send(m, keyMsg("esc"))
	if m.mode != modeEdit || m.st.Height != 21 {
		t.Fatalf("esc should close the menu and restore the editor, %s %d", m.mode, m.st.Height)
	}
}

func TestAboutAlert(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("alt+h"))
	m = send(m, keyMsg("down"))
	m = send(m, keyMsg("enter"))
	if m.mode != modeAlert || m.alert == nil || m.alert.Title != "About Me" {
		t.Fatalf("expected About alert, got %s %+v", m.mode, m.alert)
	}
	if !strings.Contains(m.View(), "Meet Your Notepad Buddy!") {
		t.Fatalf("alert header not rendered")
	}
	m = send(m, keyMsg("esc"))
	if m.mode != modeEdit {
		t.Fatalf("esc should dismiss the alert")
	}
}

func TestMouseMenuAndToolbar(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, click(2, 0))
	if m.mode != modeMenu || m.menuOpen != 0 {
		t.Fatalf("click on File should open it")
	}
	// row 2 is the first item below the drop-down border
	m = send(m, click(3, 2))
	if m.mode != modeOpen {
		t.Fatalf("click on Open item should show the picker, got %s", m.mode)
	}
	m = send(m, keyMsg("esc"))

	m = send(m, click(12, 22))
	if m.mode != modeSave {
		t.Fatalf("click on the Save button should show the save prompt, got %s", m.mode)
	}
}

func TestMouseClickMovesCursor(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "abc\ndef")
	m = send(m, click(1, 2))
	if m.st.Doc.Cursor != 5 {
		t.Fatalf("cursor %d, want 5", m.st.Doc.Cursor)
	}
	m = send(m, click(50, 1))
	if m.st.Doc.Cursor != 3 {
		t.Fatalf("click past line end should clamp, cursor %d", m.st.Doc.Cursor)
	}

	// File drop-down open: the editor starts below it until the click closes it
	m = send(m, keyMsg("alt+f"))
	top := m.editorTop()
	m = send(m, click(1, top))
	if m.mode != modeEdit || m.st.Doc.Cursor != 1 {
		t.Fatalf("click on the first editor row with a menu open: %s cursor %d", m.mode, m.st.Doc.Cursor)
	}
}

func TestChooseFont(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("ctrl+t"))
	m = send(m, keyMsg("down"))
	m = send(m, keyMsg("enter"))
	if !m.font.sizing {
		t.Fatalf("enter should move to the size prompt")
	}
	m = send(m, keyMsg("backspace"))
	m = send(m, keyMsg("backspace"))
	m = typeText(m, "20")
	m = send(m, keyMsg("enter"))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode, got %s", m.mode)
	}
	if m.st.Style.Family != state.Families[1] || m.st.Style.Size != 20 {
		t.Fatalf("style %+v", m.st.Style)
	}
}

func TestChooseFontRejectsBadSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("ctrl+t"))
	m = send(m, keyMsg("enter"))
	m = send(m, keyMsg("backspace"))
	m = send(m, keyMsg("backspace"))
	m = typeText(m, "big")
	m = send(m, keyMsg("enter"))
	if m.mode != modeAlert || m.alert.Kind != state.Error {
		t.Fatalf("expected an error alert, got %s", m.mode)
	}
	if m.st.Style != state.DefaultStyle() {
		t.Fatalf("style should be unchanged, got %+v", m.st.Style)
	}
}

func TestChooseColorSwatch(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(m, keyMsg("ctrl+k"))
	start := m.color.cursor
	m = send(m, keyMsg("down"))
	m = send(m, keyMsg("enter"))
	want := util.Swatches[min(start+1, len(util.Swatches)-1)].Hex
	if m.st.Style.Color != want {
		t.Fatalf("color %s, want %s", m.st.Style.Color, want)
	}
}

func TestShowChangesAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "new text")
	m = send(m, keyMsg("ctrl+d"))
	if m.mode != modeChanges {
		t.Fatalf("expected changes view, got %s", m.mode)
	}
	if !strings.Contains(m.View(), "+ new text") {
		t.Fatalf("diff missing inserted line:\n%s", m.View())
	}
	m = send(m, keyMsg("esc"))
	m = send(m, keyMsg("f1"))
	if m.mode != modeHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("F1 should show the shortcuts")
	}
	m = send(m, keyMsg("esc"))
	if m.mode != modeEdit {
		t.Fatalf("esc should close help")
	}
}

func TestViewLayout(t *testing.T) {
	m, _, _ := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], " File ") {
		t.Fatalf("menu bar row %q", lines[0])
	}
	if !strings.HasPrefix(lines[22], " [ Open ] [ Save ]") {
		t.Fatalf("toolbar row %q", lines[22])
	}
	if !strings.HasPrefix(lines[23], "Ln 1, Col 1") {
		t.Fatalf("status row %q", lines[23])
	}
}
