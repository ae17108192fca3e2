// Package menus holds the menu bar and toolbar layout.
package menus

import (
	"fmt"

	"notepad/internal/tui/state"
)

// Item is one menu entry.
type Item struct {
	Command  state.Command
	Shortcut string
}

// Menu is one drop-down of the menu bar.
type Menu struct {
	Title  string
	Hotkey string // key that opens the menu directly
	Items  []Item
}

// Bar is the menu bar, left to right.
var Bar = []Menu{
	{"File", "alt+f", []Item{
		{state.CmdOpen, "ctrl+o"},
		{state.CmdSave, "ctrl+s"},
		{state.CmdExit, "ctrl+q"},
	}},
	{"Edit", "alt+e", []Item{
		{state.CmdCut, "ctrl+x"},
		{state.CmdCopy, "ctrl+c"},
		{state.CmdPaste, "ctrl+v"},
		{state.CmdShowChanges, "ctrl+d"},
	}},
	{"Format", "alt+o", []Item{
		{state.CmdChooseFont, "ctrl+t"},
		{state.CmdChooseColor, "ctrl+k"},
	}},
	{"Help", "alt+h", []Item{
		{state.CmdShowHelp, "F1"},
		{state.CmdAbout, ""},
	}},
}

// Toolbar lists the toolbar buttons.
var Toolbar = []state.Command{state.CmdOpen, state.CmdSave}

// RenderOptions returns the labels of a menu's entries with their shortcuts
// right-aligned in a shared column.
func RenderOptions(m Menu) []string {
	width := 0
	for _, it := range m.Items {
		if n := len(it.Command.String()); n > width {
			width = n
		}
	}
	out := make([]string, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, fmt.Sprintf("%-*s  %6s", width, it.Command.String(), it.Shortcut))
	}
	return out
}

// ByHotkey returns the index of the menu opened by key, or -1.
func ByHotkey(key string) int {
	for i, m := range Bar {
		if m.Hotkey == key {
			return i
		}
	}
	return -1
}
