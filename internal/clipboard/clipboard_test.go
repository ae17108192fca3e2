package clipboard

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestMemoryRoundTrip(t *testing.T) {
	var c Clipboard = &Memory{}

	got, err := c.ReadAll()
	be.Err(t, err, nil)
	be.Equal(t, got, "")

	be.Err(t, c.WriteAll("snippet"), nil)
	got, err = c.ReadAll()
	be.Err(t, err, nil)
	be.Equal(t, got, "snippet")
}

func TestNewMemoryBackend(t *testing.T) {
	c, name := New(BackendMemory)
	be.Equal(t, name, BackendMemory)
	_, ok := c.(*Memory)
	be.True(t, ok)
}

func TestNewSystemBackendFallsBack(t *testing.T) {
	c, name := New(BackendSystem)
	switch name {
	case BackendSystem:
		_, ok := c.(System)
		be.True(t, ok)
	case BackendMemory:
		_, ok := c.(*Memory)
		be.True(t, ok)
	default:
		t.Fatalf("unexpected backend %q", name)
	}
}
