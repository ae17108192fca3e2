package helpoverlay

import (
	"strings"
	"testing"
)

func TestViewListsEverySection(t *testing.T) {
	out := NewHelpOverlay().View()
	if !strings.HasPrefix(out, "Keyboard Shortcuts\n") {
		t.Fatalf("missing title: %q", out)
	}
	for _, sec := range Sections {
		if !strings.Contains(out, "\n"+sec.Title+":\n") {
			t.Fatalf("missing section %s", sec.Title)
		}
		for _, k := range sec.Keys {
			if !strings.Contains(out, "  "+k+"\n") {
				t.Fatalf("missing key %q", k)
			}
		}
	}
}
