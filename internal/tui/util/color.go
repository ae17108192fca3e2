package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#0984E3"),
		Accent:    lipgloss.Color("#E84393"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#353B48"),
		Surface:   lipgloss.Color("#2F3640"),
		Text:      lipgloss.Color("#F1C40F"),
	}
}

// Swatch is a named colour offered by the text colour picker.
type Swatch struct {
	Name string
	Hex  string
}

// Swatches are the picker's preset colours, in display order.
var Swatches = []Swatch{
	{"Sunflower", "#F1C40F"},
	{"Snow", "#FFFFFF"},
	{"Cloud", "#DCDDE1"},
	{"Electron Blue", "#0984E3"},
	{"Pico Pink", "#E84393"},
	{"Mint", "#2AA876"},
	{"Coral", "#D9534F"},
	{"Orange", "#F0AD4E"},
	{"Lavender", "#A29BFE"},
	{"Teal", "#00CEC9"},
}
