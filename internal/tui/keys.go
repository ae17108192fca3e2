package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"notepad/internal/tui/state"
)

type keyMap struct {
	Open        key.Binding
	Save        key.Binding
	Exit        key.Binding
	Cut         key.Binding
	Copy        key.Binding
	Paste       key.Binding
	SelectAll   key.Binding
	ShowChanges key.Binding
	Font        key.Binding
	Color       key.Binding
	Help        key.Binding
	Menu        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:        key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^o", "open")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Exit:        key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^q", "exit")),
		Cut:         key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^x", "cut")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "copy")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("^a", "select all")),
		ShowChanges: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "changes")),
		Font:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^t", "font")),
		Color:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("^k", "color")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Menu:        key.NewBinding(key.WithKeys("f10"), key.WithHelp("F10", "menu")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Open, k.Save, k.Exit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Save, k.Exit},
		{k.Cut, k.Copy, k.Paste, k.SelectAll, k.ShowChanges},
		{k.Font, k.Color},
		{k.Help, k.Menu},
	}
}

// commands maps shortcut bindings to commands.
func (k keyMap) commands() []struct {
	binding key.Binding
	cmd     state.Command
} {
	return []struct {
		binding key.Binding
		cmd     state.Command
	}{
		{k.Open, state.CmdOpen},
		{k.Save, state.CmdSave},
		{k.Exit, state.CmdExit},
		{k.Cut, state.CmdCut},
		{k.Copy, state.CmdCopy},
		{k.Paste, state.CmdPaste},
		{k.ShowChanges, state.CmdShowChanges},
		{k.Font, state.CmdChooseFont},
		{k.Color, state.CmdChooseColor},
		{k.Help, state.CmdShowHelp},
	}
}
