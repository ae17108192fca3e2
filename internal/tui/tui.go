package tui

import (
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/views/menus"
	"notepad/internal/tui/widgets/alert"
	"notepad/internal/tui/widgets/diff"
	"notepad/internal/tui/widgets/editor"
	"notepad/internal/tui/widgets/helpoverlay"
	"notepad/internal/tui/widgets/menubar"
	"notepad/internal/tui/widgets/statusbar"
)

// Options configures the editor window.
type Options struct {
	Env state.Env
	// StartDir is where the Open and Save dialogs start.
	StartDir string
	NoColor  bool
}

// Run shows the editor window and blocks until the user exits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type mode string

const (
	modeEdit    mode = "edit"    // typing into the buffer
	modeMenu    mode = "menu"    // a drop-down is open
	modeOpen    mode = "open"    // file picker
	modeSave    mode = "save"    // save path prompt
	modeFont    mode = "font"    // choose font
	modeColor   mode = "color"   // choose text color
	modeAlert   mode = "alert"   // modal message
	modeChanges mode = "changes" // diff against the last open/save
	modeHelp    mode = "help"    // keyboard shortcuts
)

type model struct {
	st  state.EditorState
	env state.Env

	mode    mode
	width   int
	height  int
	noColor bool
	dir     string

	keys keyMap
	help help.Model

	// menu
	menuOpen int
	menuSel  int

	// modals
	alert  *state.Alert
	picker filepicker.Model
	save   saveDialog
	font   fontDialog
	color  colorDialog
	pager  viewport.Model

	// widgets
	bar    menubar.MenuBar
	edit   editor.Editor
	status statusbar.StatusBar
	box    alert.Box
}

func newModel(opts Options) model {
	env := opts.Env
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	dir := opts.StartDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}
	return model{
		st:       state.New(),
		env:      env,
		mode:     modeEdit,
		noColor:  opts.NoColor,
		dir:      dir,
		keys:     defaultKeyMap(),
		help:     help.New(),
		menuOpen: -1,
		bar:      menubar.NewMenuBar(opts.NoColor),
		edit:     editor.NewEditor(opts.NoColor),
		status:   statusbar.NewStatusBar(opts.NoColor),
		box:      alert.NewBox(opts.NoColor),
	}
}

func (m model) Init() tea.Cmd { return nil }

// Update handles all window interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
		m.layout()
		if m.mode == modeOpen {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(m.pickerSize())
			return m, cmd
		}
		return m, nil
	}

	switch m.mode {
	case modeOpen:
		return m.updateOpen(msg)
	case modeSave:
		return m.updateSave(msg)
	case modeFont:
		return m.updateFont(msg)
	case modeColor:
		return m.updateColor(msg)
	case modeAlert:
		return m.updateAlert(msg)
	case modeChanges, modeHelp:
		return m.updatePager(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeMenu {
			return m.updateMenu(msg)
		}
		return m.updateEdit(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if i := menus.ByHotkey(k); i >= 0 {
		m.openMenu(i)
		return m, nil
	}
	if key.Matches(msg, m.keys.Menu) {
		m.openMenu(0)
		return m, nil
	}
	if key.Matches(msg, m.keys.SelectAll) {
		m.st = state.Edit(m.st, state.Document.SelectAll)
		return m, nil
	}
	for _, b := range m.keys.commands() {
		if key.Matches(msg, b.binding) {
			cmd := m.dispatch(b.cmd)
			return m, cmd
		}
	}

	page := max(1, m.st.Height-1)
	var op func(state.Document) state.Document
	switch k {
	case "left", "shift+left":
		op = func(d state.Document) state.Document { return d.Left(k == "shift+left") }
	case "right", "shift+right":
		op = func(d state.Document) state.Document { return d.Right(k == "shift+right") }
	case "up", "shift+up":
		op = func(d state.Document) state.Document { return d.Up(k == "shift+up") }
	case "down", "shift+down":
		op = func(d state.Document) state.Document { return d.Down(k == "shift+down") }
	case "home", "shift+home":
		op = func(d state.Document) state.Document { return d.Home(k == "shift+home") }
	case "end", "shift+end":
		op = func(d state.Document) state.Document { return d.End(k == "shift+end") }
	case "ctrl+home", "ctrl+shift+home":
		op = func(d state.Document) state.Document { return d.Top(k == "ctrl+shift+home") }
	case "ctrl+end", "ctrl+shift+end":
		op = func(d state.Document) state.Document { return d.Bottom(k == "ctrl+shift+end") }
	case "pgup":
		op = func(d state.Document) state.Document {
			for i := 0; i < page; i++ {
				d = d.Up(false)
			}
			return d
		}
	case "pgdown":
		op = func(d state.Document) state.Document {
			for i := 0; i < page; i++ {
				d = d.Down(false)
			}
			return d
		}
	case "enter":
		op = func(d state.Document) state.Document { return d.Insert("\n") }
	case "tab":
		op = func(d state.Document) state.Document { return d.Insert("\t") }
	case "backspace":
		op = state.Document.Backspace
	case "delete":
		op = state.Document.Delete
	default:
		switch {
		case msg.Type == tea.KeySpace:
			op = func(d state.Document) state.Document { return d.Insert(" ") }
		case msg.Type == tea.KeyRunes && !msg.Alt:
			text := string(msg.Runes)
			op = func(d state.Document) state.Document { return d.Insert(text) }
		}
	}
	if op != nil {
		m.st = state.Edit(m.st, op)
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if i := menus.ByHotkey(k); i >= 0 {
		m.openMenu(i)
		return m, nil
	}
	items := menus.Bar[m.menuOpen].Items
	switch k {
	case "esc", "f10":
		m.closeMenu()
	case "left":
		m.openMenu((m.menuOpen + len(menus.Bar) - 1) % len(menus.Bar))
	case "right":
		m.openMenu((m.menuOpen + 1) % len(menus.Bar))
	case "up", "k":
		if m.menuSel > 0 {
			m.menuSel--
		}
	case "down", "j":
		if m.menuSel < len(items)-1 {
			m.menuSel++
		}
	case "enter", " ":
		cmd := m.dispatch(items[m.menuSel].Command)
		return m, cmd
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	top := m.editorTop()
	inEditor := msg.Y >= top && msg.Y < top+m.st.Height

	if msg.Action == tea.MouseActionMotion {
		if m.mode == modeEdit && inEditor {
			off := m.offsetAt(msg.X, msg.Y)
			m.st = state.Edit(m.st, func(d state.Document) state.Document { return d.MoveTo(off, true) })
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch {
	case msg.Y == 0:
		i := menubar.TitleAt(msg.X)
		if i < 0 || i == m.menuOpen {
			m.closeMenu()
		} else {
			m.openMenu(i)
		}
	case m.mode == modeMenu && msg.Y < top:
		if idx := menubar.ItemAt(m.menuOpen, msg.Y-1, msg.X); idx >= 0 {
			cmd := m.dispatch(menus.Bar[m.menuOpen].Items[idx].Command)
			return m, cmd
		}
		m.closeMenu()
	case msg.Y == m.height-2:
		m.closeMenu()
		if c := menubar.ButtonAt(msg.X); c != state.CmdNone {
			cmd := m.dispatch(c)
			return m, cmd
		}
	case inEditor:
		// map the click before the drop-down closes and the editor moves up
		off := m.offsetAt(msg.X, msg.Y)
		m.closeMenu()
		m.st = state.Edit(m.st, func(d state.Document) state.Document { return d.MoveTo(off, msg.Shift) })
	default:
		m.closeMenu()
	}
	return m, nil
}

func (m model) updateAlert(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ", "ctrl+c":
			m.alert = nil
			m.mode = modeEdit
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.alert = nil
			m.mode = modeEdit
		}
	}
	return m, nil
}

func (m model) updatePager(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter", "q", "f1", "ctrl+c":
			m.mode = modeEdit
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

// ===== Commands & effects =====

// dispatch runs cmd through the command table and applies its effect.
func (m *model) dispatch(c state.Command) tea.Cmd {
	m.env.Logger.Debug("command", slog.String("name", c.String()))
	m.closeMenu()
	st, eff := state.Dispatch(c, m.st, m.env)
	m.st = st
	return m.apply(eff)
}

func (m *model) apply(eff state.Effect) tea.Cmd {
	if eff.Quit {
		m.env.Logger.Info("exit requested")
		return tea.Quit
	}
	if eff.Alert != nil {
		m.alert = eff.Alert
		m.mode = modeAlert
		return nil
	}
	switch eff.Dialog {
	case state.OpenDialog:
		return m.showOpen()
	case state.SaveDialog:
		return m.showSave()
	case state.FontDialog:
		return m.showFont()
	case state.ColorDialog:
		return m.showColor()
	case state.ChangesDialog:
		m.showPager(modeChanges, diff.NewDiffView().View(m.st.Baseline, m.st.Doc.String()))
	case state.HelpDialog:
		m.showPager(modeHelp, helpoverlay.NewHelpOverlay().View())
	}
	return nil
}

func (m *model) showPager(md mode, content string) {
	w, h := m.modalSize()
	m.pager = viewport.New(w, h)
	m.pager.SetContent(content)
	m.mode = md
}

// ===== Layout =====

func (m *model) openMenu(i int) {
	m.menuOpen = i
	m.menuSel = 0
	m.mode = modeMenu
	m.layout()
}

func (m *model) closeMenu() {
	if m.menuOpen < 0 && m.mode != modeMenu {
		return
	}
	m.menuOpen = -1
	if m.mode == modeMenu {
		m.mode = modeEdit
	}
	m.layout()
}

// layout sizes the editing surface: menu bar and any open drop-down above,
// toolbar and status bar below.
func (m *model) layout() {
	if m.width == 0 {
		return
	}
	m.st = state.Resize(m.st, m.width, m.bodyHeight())
}

func (m model) editorTop() int { return 1 + menubar.DropdownHeight(m.menuOpen) }

func (m model) bodyHeight() int {
	return max(1, m.height-3-menubar.DropdownHeight(m.menuOpen))
}

func (m model) modalSize() (int, int) {
	return max(20, m.width-6), max(3, m.height-6)
}

func (m model) pickerSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(10, m.height-2)}
}

func (m *model) scrollBy(n int) {
	v := m.st.ScrollV + n
	if last := m.st.Doc.LineCount() - 1; v > last {
		v = last
	}
	if v < 0 {
		v = 0
	}
	m.st.ScrollV = v
}

// offsetAt maps a screen cell inside the editor to a document offset.
// Tabs and zero-width runes take one cell, as the editor draws them.
func (m model) offsetAt(x, y int) int {
	line := m.st.ScrollV + y - m.editorTop()
	lines := m.st.Doc.Lines()
	if line >= len(lines) {
		return m.st.Doc.Len()
	}
	runes := []rune(lines[line])
	col, w := m.st.ScrollH, 0
	for col < len(runes) {
		cw := state.CellWidth(runes[col])
		if w+cw > x {
			break
		}
		w += cw
		col++
	}
	return m.st.Doc.Offset(line, col)
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.width == 0 {
		return ""
	}
	switch m.mode {
	case modeOpen:
		return m.modal(m.viewOpen())
	case modeSave:
		return m.modal(m.viewSave())
	case modeFont:
		return m.modal(m.viewFont())
	case modeColor:
		return m.modal(m.viewColor())
	case modeAlert:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.box.View(*m.alert, m.width-4))
	case modeChanges:
		return m.modal(titleStyle.Render("Show Changes") + "\n\n" + m.pager.View() + "\n" + faintStyle.Render("↑/↓: scroll   esc: close"))
	case modeHelp:
		return m.modal(m.pager.View() + "\n" + faintStyle.Render("↑/↓: scroll   esc: close"))
	}
	return m.viewWindow()
}

func (m model) viewWindow() string {
	var b strings.Builder
	b.WriteString(m.bar.View(m.width, m.menuOpen) + "\n")
	if m.menuOpen >= 0 {
		b.WriteString(m.bar.Dropdown(m.menuOpen, m.menuSel) + "\n")
	}
	b.WriteString(m.edit.View(m.st, m.mode == modeEdit) + "\n")

	tb := m.bar.Toolbar(0)
	hint := m.help.View(m.keys)
	if gap := m.width - lipgloss.Width(tb) - lipgloss.Width(hint) - 1; gap > 0 {
		tb += strings.Repeat(" ", gap) + hint
	}
	b.WriteString(tb + "\n")
	b.WriteString(m.status.View(m.st))
	return b.String()
}

func (m model) modal(content string) string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(content))
}
