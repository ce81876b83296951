package statusbar

import (
	"strings"

	"pagepad/internal/tui/state"
	"pagepad/internal/tui/widgets/tagchips"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: document title, status chips,
// and any ephemeral notice.
func (StatusBar) View(s state.UIState, title string, tags []state.Tag, noColor bool) string {
	parts := []string{title}
	if chips := tagchips.View(tags, noColor); chips != "" {
		parts = append(parts, chips)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
