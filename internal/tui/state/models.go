package state

// Style is the cosmetic text styling of the editing surface.
type Style struct {
	Family     string
	Size       float64
	Color      string // "#RRGGBB"
	Background string // "#RRGGBB"
}

// Default styling applied at every start.
const (
	DefaultFamily     = "Roboto"
	DefaultSize       = 16
	DefaultColor      = "#F1C40F"
	DefaultBackground = "#2F3640"
)

// Families lists the font faces offered by Choose Font. The terminal cannot
// load fonts, so each family maps to a text attribute when rendered.
var Families = []string{
	DefaultFamily,
	"Monospace",
	"Bold",
	"Italic",
	"Underline",
	"Faint",
	"Bold Italic",
}

// DefaultStyle returns the styling used at start-up.
func DefaultStyle() Style {
	return Style{
		Family:     DefaultFamily,
		Size:       DefaultSize,
		Color:      DefaultColor,
		Background: DefaultBackground,
	}
}

// EditorState is the single owned state of the editor window. Handlers take
// it by value and return the updated copy.
type EditorState struct {
	Doc Document
	// Baseline is the text as of the last successful Open or Save.
	Baseline string
	Style    Style

	// Layout & scrolling
	Width   int
	Height  int
	ScrollV int // first visible line
	ScrollH int // first visible column

	// Notice is an ephemeral status-bar message.
	Notice string
}

// New returns the start-up state: empty buffer, default styling.
func New() EditorState {
	return EditorState{
		Doc:   NewDocument(""),
		Style: DefaultStyle(),
	}
}

// Modified reports whether the buffer differs from the baseline.
func (s EditorState) Modified() bool {
	return s.Doc.String() != s.Baseline
}

// AlertKind is the severity of a modal alert.
type AlertKind int

const (
	Info AlertKind = iota
	Error
)

// Alert is a user-visible modal message.
type Alert struct {
	Kind   AlertKind
	Title  string
	Header string
	Text   string
}

// DialogKind names a modal input dialog a command asks the window to show.
type DialogKind int

const (
	NoDialog DialogKind = iota
	OpenDialog
	SaveDialog
	FontDialog
	ColorDialog
	ChangesDialog
	HelpDialog
)

// Effect is everything a handler asks the window to do besides updating state.
type Effect struct {
	Alert  *Alert
	Dialog DialogKind
	Quit   bool
}
