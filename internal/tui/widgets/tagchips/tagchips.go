package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pagepad/internal/tui/state"
	"pagepad/internal/tui/util"
)

// View renders document status tags in a stable order using colored
// chips when possible and ASCII fallbacks when color is disabled.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.SAVED:
		return "Saved"
	case state.UNSAVED:
		return "Unsaved"
	case state.UNLINKED:
		return "Unlinked"
	case state.ZOOM:
		return fmt.Sprintf("%d%%", t.Value)
	case state.PAGES:
		if t.Value == 1 {
			return "1 page"
		}
		return fmt.Sprintf("%d pages", t.Value)
	case state.CHARS:
		return fmt.Sprintf("%d chars", t.Value)
	case state.WORDS:
		return fmt.Sprintf("%d words", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	pal := util.DefaultPalette()
	switch t.Kind {
	case state.SAVED:
		return base.Background(pal.Success).Foreground(lipgloss.Color("#FFFFFF"))
	case state.UNSAVED:
		return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
	case state.UNLINKED:
		return base.Background(pal.Danger).Foreground(lipgloss.Color("#FFFFFF"))
	case state.ZOOM:
		return base.Background(pal.Primary).Foreground(lipgloss.Color("#FFFFFF"))
	default:
		return base.Background(pal.Muted).Foreground(lipgloss.Color("#FFFFFF"))
	}
}
