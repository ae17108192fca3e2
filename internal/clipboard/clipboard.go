// Package clipboard wraps the system clipboard with an in-memory fallback
// for terminals and hosts that have no clipboard utility.
package clipboard

import (
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Backend names accepted by New.
const (
	BackendSystem = "system"
	BackendMemory = "memory"
)

// Clipboard is the subset of clipboard operations the editor needs.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// ErrUnsupported is returned by the system clipboard when no backend exists.
var ErrUnsupported = errors.New("clipboard: no system clipboard available")

// System uses the host clipboard (xclip/xsel/wl-clipboard, pbcopy, win32).
type System struct{}

func (System) ReadAll() (string, error) {
	if sysclip.Unsupported {
		return "", ErrUnsupported
	}
	return sysclip.ReadAll()
}

func (System) WriteAll(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// Memory keeps the clipboard inside the process.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// New returns the clipboard for backend. An empty backend or "system" picks
// the host clipboard unless the platform has none, in which case it falls
// back to memory. The returned name is the backend actually chosen.
func New(backend string) (Clipboard, string) {
	switch backend {
	case BackendMemory:
		return &Memory{}, BackendMemory
	default:
		if sysclip.Unsupported {
			return &Memory{}, BackendMemory
		}
		return System{}, BackendSystem
	}
}
