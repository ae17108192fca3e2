package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the changes from before to after as a line diff with
// character-level highlights on lines that were edited in place.
func (DiffView) View(before, after string) string {
	if before == after {
		return "No changes\n"
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitLines(df.Text) {
				sb.WriteString("  " + faint.Render(l) + "\n")
			}
		case dmp.DiffDelete:
			// a delete followed by an insert of as many lines is an edit
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				del, ins := splitLines(df.Text), splitLines(diffs[i+1].Text)
				if len(del) == len(ins) {
					for j := range del {
						writeEdited(&sb, d, del[j], ins[j])
					}
					i++
					continue
				}
			}
			for _, l := range splitLines(df.Text) {
				sb.WriteString(delLine.Render("- "+l) + "\n")
			}
		case dmp.DiffInsert:
			for _, l := range splitLines(df.Text) {
				sb.WriteString(addLine.Render("+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

func writeEdited(sb *strings.Builder, d *dmp.DiffMatchPatch, before, after string) {
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)
	sb.WriteString(delLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(delChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(delLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(addLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(addChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(addLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
}

// splitLines splits a diff chunk into lines. Chunks from DiffCharsToLines end
// with "\n" except possibly the last one of the text.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
