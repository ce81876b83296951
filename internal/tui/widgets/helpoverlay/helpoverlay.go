package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped key help. networked controls which save wording
// is shown.
func (HelpOverlay) View(networked bool) string {
	save := "ctrl+s: save to server"
	if !networked {
		save = "ctrl+s: export <title>.txt"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"Document", []string{save, "ctrl+e: export page PNG", "ctrl+y: copy all to clipboard"}},
		{"View", []string{"ctrl+d: pending changes on/off", "alt+up/alt+down: zoom ±25%", "alt+0: zoom 100%"}},
		{"Editing", []string{"tab: insert tab character", "arrows/PgUp/PgDn: move"}},
		{"Session", []string{"f1: this help", "ctrl+c: quit (asks when unsaved)"}},
	}
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
