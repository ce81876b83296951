package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"pagepad/internal/geom"
)

var (
	diffIns  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	diffDel  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Strikethrough(true)
	diffHead = lipgloss.NewStyle().Bold(true)
	faint    = lipgloss.NewStyle().Faint(true)
)

// renderPendingChanges shows how the buffer diverges from the
// last-saved snapshot as one continuous document flow: inserted text
// underlined, deleted text struck through, unchanged text dimmed. The
// flow wraps at the page's logical text width, with a word-count
// summary on top.
func renderPendingChanges(saved, buffer string) string {
	if saved == buffer {
		return "No unsaved changes\n"
	}

	d := dmp.New()
	diffs := d.DiffMain(saved, buffer, true)
	diffs = d.DiffCleanupSemantic(diffs)

	var added, removed int
	var body strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			added += len(strings.Fields(df.Text))
			body.WriteString(diffIns.Render(df.Text))
		case dmp.DiffDelete:
			removed += len(strings.Fields(df.Text))
			body.WriteString(diffDel.Render(df.Text))
		default:
			body.WriteString(faint.Render(df.Text))
		}
	}

	head := diffHead.Render(fmt.Sprintf("Pending changes: +%d / -%d words", added, removed))
	flow := lipgloss.NewStyle().Width(geom.TextColumns).Render(body.String())
	return head + "\n\n" + flow + "\n"
}
