package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// Section is a titled group of key descriptions.
type Section struct {
	Title string
	Keys  []string
}

// Sections lists every shortcut, grouped the way the menu bar is.
var Sections = []Section{
	{"File", []string{"ctrl+o: open", "ctrl+s: save", "ctrl+q: exit"}},
	{"Edit", []string{"ctrl+x: cut", "ctrl+c: copy", "ctrl+v: paste", "ctrl+a: select all", "ctrl+d: show changes"}},
	{"Format", []string{"ctrl+t: choose font", "ctrl+k: choose text color"}},
	{"Navigation", []string{"arrows: move", "shift+arrows: select", "home/end: line edges", "ctrl+home/end: document edges", "pgup/pgdown: page"}},
	{"Menus", []string{"F10: open menu bar", "alt+f/e/o/h: open a menu", "enter: select", "esc: close"}},
	{"Help", []string{"F1: this help"}},
}

// View returns grouped keys help.
func (HelpOverlay) View() string {
	var b strings.Builder
	b.WriteString("Keyboard Shortcuts\n")
	for _, sec := range Sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
