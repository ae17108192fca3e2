package state

import (
	"log/slog"

	"notepad/internal/clipboard"
	"notepad/internal/docio"
)

// Command is an action reachable from the menu bar, toolbar or a shortcut.
type Command int

const (
	CmdNone Command = iota
	CmdOpen
	CmdSave
	CmdExit
	CmdCut
	CmdCopy
	CmdPaste
	CmdChooseFont
	CmdChooseColor
	CmdAbout
	CmdShowChanges
	CmdShowHelp
)

var commandNames = map[Command]string{
	CmdOpen:        "Open",
	CmdSave:        "Save",
	CmdExit:        "Exit",
	CmdCut:         "Cut",
	CmdCopy:        "Copy",
	CmdPaste:       "Paste",
	CmdChooseFont:  "Choose Font",
	CmdChooseColor: "Choose Text Color",
	CmdAbout:       "About",
	CmdShowChanges: "Show Changes",
	CmdShowHelp:    "Keyboard Shortcuts",
}

// String returns the menu label of c.
func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "None"
}

// Env carries the collaborators handlers may touch.
type Env struct {
	Clipboard clipboard.Clipboard
	Store     docio.Store
	Logger    *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Handler runs one command against the editor state.
type Handler func(EditorState, Env) (EditorState, Effect)

var handlers = map[Command]Handler{
	CmdOpen:        dialog(OpenDialog),
	CmdSave:        dialog(SaveDialog),
	CmdExit:        exit,
	CmdCut:         cut,
	CmdCopy:        copySelection,
	CmdPaste:       paste,
	CmdChooseFont:  dialog(FontDialog),
	CmdChooseColor: dialog(ColorDialog),
	CmdAbout:       about,
	CmdShowChanges: dialog(ChangesDialog),
	CmdShowHelp:    dialog(HelpDialog),
}

// Dispatch runs the handler bound to cmd. Unknown commands change nothing.
func Dispatch(cmd Command, s EditorState, env Env) (EditorState, Effect) {
	h, ok := handlers[cmd]
	if !ok {
		return s, Effect{}
	}
	return h(s, env)
}

func dialog(kind DialogKind) Handler {
	return func(s EditorState, _ Env) (EditorState, Effect) {
		return s, Effect{Dialog: kind}
	}
}

func exit(s EditorState, _ Env) (EditorState, Effect) {
	return s, Effect{Quit: true}
}

func cut(s EditorState, env Env) (EditorState, Effect) {
	if !s.Doc.HasSelection() {
		return s, Effect{}
	}
	if err := env.Clipboard.WriteAll(s.Doc.SelectedText()); err != nil {
		env.logger().Warn("clipboard write failed", slog.String("error", err.Error()))
		s.Notice = "Clipboard unavailable: " + err.Error()
		return s, Effect{}
	}
	s = Edit(s, Document.DeleteSelection)
	return s, Effect{}
}

func copySelection(s EditorState, env Env) (EditorState, Effect) {
	if !s.Doc.HasSelection() {
		return s, Effect{}
	}
	if err := env.Clipboard.WriteAll(s.Doc.SelectedText()); err != nil {
		env.logger().Warn("clipboard write failed", slog.String("error", err.Error()))
		s.Notice = "Clipboard unavailable: " + err.Error()
	}
	return s, Effect{}
}

func paste(s EditorState, env Env) (EditorState, Effect) {
	text, err := env.Clipboard.ReadAll()
	if err != nil {
		env.logger().Warn("clipboard read failed", slog.String("error", err.Error()))
		s.Notice = "Clipboard unavailable: " + err.Error()
		return s, Effect{}
	}
	if text == "" {
		return s, Effect{}
	}
	s = Edit(s, func(d Document) Document { return d.Insert(text) })
	return s, Effect{}
}

// AboutAlert is the content of Help → About.
var AboutAlert = Alert{
	Kind:   Info,
	Title:  "About Me",
	Header: "Meet Your Notepad Buddy!",
	Text:   "Hey there! This is your friendly Modern Notepad\nCrafted with love by Your Name\nID: Your ID\nEnjoy your writing journey!",
}

func about(s EditorState, _ Env) (EditorState, Effect) {
	a := AboutAlert
	return s, Effect{Alert: &a}
}

// Alert texts for the file commands.
const (
	OpenOK     = "Yay! File opened successfully. Let’s get creative!"
	OpenFailed = "Oops! Something went wrong while opening: "
	SaveOK     = "Great job! Your file is saved and ready to shine!"
	SaveFailed = "Hmm, looks like we hit a snag saving: "
)

// OpenFile reads path into the buffer. On failure the buffer is untouched and
// the alert carries the underlying error text.
func OpenFile(s EditorState, env Env, path string) (EditorState, Effect) {
	text, err := env.Store.Open(path)
	if err != nil {
		env.logger().Error("open failed", slog.String("path", path), slog.String("error", err.Error()))
		return s, Effect{Alert: &Alert{Kind: Error, Text: OpenFailed + err.Error()}}
	}
	env.logger().Info("file opened", slog.String("path", path), slog.Int("bytes", len(text)))
	s = Opened(s, text)
	return s, Effect{Alert: &Alert{Kind: Info, Text: OpenOK}}
}

// SaveFile writes the buffer to path, overwriting any existing file.
func SaveFile(s EditorState, env Env, path string) (EditorState, Effect) {
	text := s.Doc.String()
	if err := env.Store.Save(path, text); err != nil {
		env.logger().Error("save failed", slog.String("path", path), slog.String("error", err.Error()))
		return s, Effect{Alert: &Alert{Kind: Error, Text: SaveFailed + err.Error()}}
	}
	env.logger().Info("file saved", slog.String("path", path), slog.Int("bytes", len(text)))
	s = Saved(s)
	return s, Effect{Alert: &Alert{Kind: Info, Text: SaveOK}}
}

// ApplyFont applies the Choose Font dialog result.
func ApplyFont(s EditorState, family, size string) (EditorState, Effect) {
	next, err := SetFont(s, family, size)
	if err != nil {
		return s, Effect{Alert: &Alert{Kind: Error, Text: err.Error()}}
	}
	return next, Effect{}
}

// ApplyColor applies the Choose Text Color dialog result.
func ApplyColor(s EditorState, input string) (EditorState, Effect) {
	next, err := SetColor(s, input)
	if err != nil {
		return s, Effect{Alert: &Alert{Kind: Error, Text: err.Error()}}
	}
	return next, Effect{}
}
