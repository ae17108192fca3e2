package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

// ===== Open: file picker =====

func (m *model) showOpen() tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = m.dir
	m.picker = fp
	m.mode = modeOpen
	// the picker sizes itself from a window message
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(m.pickerSize())
	return tea.Batch(cmd, m.picker.Init())
}

func (m model) updateOpen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "esc" || k.String() == "ctrl+c") {
		m.env.Logger.Debug("open cancelled")
		m.mode = modeEdit
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	m.dir = m.picker.CurrentDirectory
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modeEdit
		m.dir = filepath.Dir(path)
		st, eff := state.OpenFile(m.st, m.env, path)
		m.st = st
		m.layout()
		cmd = m.apply(eff)
		return m, cmd
	}
	return m, cmd
}

func (m model) viewOpen() string {
	title := titleStyle.Render("Open") + faintStyle.Render("  "+m.picker.CurrentDirectory)
	return title + "\n\n" + m.picker.View()
}

// ===== Save: path input =====

type saveDialog struct {
	input   textinput.Model
	suggest []string
}

func (m *model) showSave() tea.Cmd {
	ti := textinput.New()
	ti.Prompt = "File: "
	ti.Placeholder = "path/to/file.txt"
	ti.Width = max(20, m.width-10)
	dir := m.dir
	if dir != "" && !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	ti.SetValue(dir)
	ti.CursorEnd()
	m.save = saveDialog{input: ti}
	m.save.computeSuggestions()
	m.mode = modeSave
	return m.save.input.Focus()
}

func (m model) updateSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.save.input, cmd = m.save.input.Update(msg)
		return m, cmd
	}
	switch k.String() {
	case "esc", "ctrl+c":
		m.env.Logger.Debug("save cancelled")
		m.mode = modeEdit
		return m, nil
	case "tab":
		if len(m.save.suggest) > 0 {
			m.save.input.SetValue(m.save.suggest[0])
			m.save.input.CursorEnd()
			m.save.computeSuggestions()
		}
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.save.input.Value())
		if raw == "" {
			return m, nil
		}
		path := expandPath(raw)
		m.mode = modeEdit
		m.dir = filepath.Dir(path)
		st, eff := state.SaveFile(m.st, m.env, path)
		m.st = st
		cmd := m.apply(eff)
		return m, cmd
	}
	var cmd tea.Cmd
	m.save.input, cmd = m.save.input.Update(msg)
	m.save.computeSuggestions()
	return m, cmd
}

func (m model) viewSave() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Save As") + "\n\n")
	b.WriteString(m.save.input.View() + "\n")
	for _, s := range m.save.suggest {
		b.WriteString(faintStyle.Render("  • ") + s + "\n")
	}
	b.WriteString("\nenter: save (overwrites)   tab: autocomplete   esc: cancel\n")
	return b.String()
}

// computeSuggestions lists directory entries matching the typed path.
func (d *saveDialog) computeSuggestions() {
	in := d.input.Value()
	if strings.TrimSpace(in) == "" {
		d.suggest = nil
		return
	}
	expanded := expandPath(in)
	dir := expanded
	base := ""
	if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(os.PathSeparator)) {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		d.suggest = nil
		return
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		cand := filepath.Join(dir, name)
		if e.IsDir() {
			cand += string(os.PathSeparator)
		}
		out = append(out, cand)
		if len(out) >= 8 {
			break
		}
	}
	d.suggest = out
}

// expandPath resolves a leading "~/" and relative paths. Everything else,
// "$" included, is taken literally: it names the file that gets written.
func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

// ===== Choose Font: family list, then size =====

type fontDialog struct {
	cursor int
	sizing bool
	size   textinput.Model
}

func (m *model) showFont() tea.Cmd {
	d := fontDialog{}
	for i, f := range state.Families {
		if f == m.st.Style.Family {
			d.cursor = i
		}
	}
	d.size = textinput.New()
	d.size.Prompt = "Size: "
	d.size.CharLimit = 8
	d.size.Width = 10
	m.font = d
	m.mode = modeFont
	return nil
}

func (m model) updateFont(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.font.sizing {
			var cmd tea.Cmd
			m.font.size, cmd = m.font.size.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	switch k.String() {
	case "esc", "ctrl+c":
		m.env.Logger.Debug("font dialog cancelled")
		m.mode = modeEdit
		return m, nil
	}
	if !m.font.sizing {
		switch k.String() {
		case "up", "k":
			if m.font.cursor > 0 {
				m.font.cursor--
			}
		case "down", "j":
			if m.font.cursor < len(state.Families)-1 {
				m.font.cursor++
			}
		case "enter":
			m.font.sizing = true
			m.font.size.SetValue(strconv.FormatFloat(m.st.Style.Size, 'f', -1, 64))
			m.font.size.CursorEnd()
			cmd := m.font.size.Focus()
			return m, cmd
		}
		return m, nil
	}
	if k.String() == "enter" {
		m.mode = modeEdit
		st, eff := state.ApplyFont(m.st, state.Families[m.font.cursor], m.font.size.Value())
		m.st = st
		if eff.Alert == nil {
			m.env.Logger.Info("font changed", slog.String("family", st.Style.Family), slog.Float64("size", st.Style.Size))
		}
		cmd := m.apply(eff)
		return m, cmd
	}
	var cmd tea.Cmd
	m.font.size, cmd = m.font.size.Update(msg)
	return m, cmd
}

func (m model) viewFont() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose Your Font") + "\n")
	b.WriteString(faintStyle.Render("Style Your Text!") + "\n\n")
	for i, f := range state.Families {
		line := "  " + f
		if i == m.font.cursor {
			line = selStyle.Render("> " + f)
		}
		b.WriteString(line + "\n")
	}
	if m.font.sizing {
		b.WriteString("\n" + titleStyle.Render("How Big Should It Be?") + "\n")
		b.WriteString(m.font.size.View() + "\n")
		b.WriteString("\nenter: apply   esc: cancel\n")
	} else {
		b.WriteString("\n↑/↓: choose   enter: next   esc: cancel\n")
	}
	return b.String()
}

// ===== Choose Text Color: swatches or hex =====

type colorDialog struct {
	cursor int
	custom bool
	input  textinput.Model
}

func (m *model) showColor() tea.Cmd {
	d := colorDialog{}
	for i, s := range util.Swatches {
		if s.Hex == m.st.Style.Color {
			d.cursor = i
		}
	}
	d.input = textinput.New()
	d.input.Prompt = "Hex: "
	d.input.Placeholder = "#RRGGBB"
	d.input.CharLimit = 7
	d.input.Width = 10
	m.color = d
	m.mode = modeColor
	return nil
}

func (m model) updateColor(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.color.custom {
			var cmd tea.Cmd
			m.color.input, cmd = m.color.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	switch k.String() {
	case "esc", "ctrl+c":
		m.env.Logger.Debug("color dialog cancelled")
		m.mode = modeEdit
		return m, nil
	case "tab":
		m.color.custom = !m.color.custom
		if m.color.custom {
			m.color.input.SetValue(m.st.Style.Color)
			m.color.input.CursorEnd()
			cmd := m.color.input.Focus()
			return m, cmd
		}
		m.color.input.Blur()
		return m, nil
	case "enter":
		choice := util.Swatches[m.color.cursor].Hex
		if m.color.custom {
			choice = m.color.input.Value()
		}
		m.mode = modeEdit
		st, eff := state.ApplyColor(m.st, choice)
		m.st = st
		if eff.Alert == nil {
			m.env.Logger.Info("text color changed", slog.String("color", st.Style.Color))
		}
		cmd := m.apply(eff)
		return m, cmd
	}
	if m.color.custom {
		var cmd tea.Cmd
		m.color.input, cmd = m.color.input.Update(msg)
		return m, cmd
	}
	switch k.String() {
	case "up", "k":
		if m.color.cursor > 0 {
			m.color.cursor--
		}
	case "down", "j":
		if m.color.cursor < len(util.Swatches)-1 {
			m.color.cursor++
		}
	}
	return m, nil
}

func (m model) viewColor() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a Color") + "\n")
	b.WriteString(faintStyle.Render("Make it Your Own!") + "\n\n")
	for i, s := range util.Swatches {
		chip := "  "
		if !m.noColor {
			chip = lipgloss.NewStyle().Background(lipgloss.Color(s.Hex)).Render("  ")
		}
		line := fmt.Sprintf("%s %-14s %s", chip, s.Name, s.Hex)
		if i == m.color.cursor && !m.color.custom {
			line = selStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	if m.color.custom {
		b.WriteString(m.color.input.View() + "\n")
	} else {
		b.WriteString(faintStyle.Render("tab: type a hex colour") + "\n")
	}
	b.WriteString("\nenter: apply   tab: swatches/hex   esc: cancel\n")
	return b.String()
}
