package util

import (
	"math"
	"strings"

	"pagepad/internal/link"
	"pagepad/internal/tui/state"
)

// ComputeTags calculates the status chips for the current document:
// one link-status tag followed by the zoom, page, char and word
// counters, in a stable display order.
func ComputeTags(m link.Machine, content string, zoom float64, pages int) []state.Tag {
	tags := make([]state.Tag, 0, 5)

	switch {
	case m.IsLinked() && !m.IsDirty():
		tags = append(tags, state.Tag{Kind: state.SAVED})
	case m.IsLinked():
		tags = append(tags, state.Tag{Kind: state.UNSAVED})
	default:
		tags = append(tags, state.Tag{Kind: state.UNLINKED})
	}

	tags = append(tags,
		state.Tag{Kind: state.ZOOM, Value: int(math.Round(zoom * 100))},
		state.Tag{Kind: state.PAGES, Value: pages},
		state.Tag{Kind: state.CHARS, Value: len([]rune(content))},
		state.Tag{Kind: state.WORDS, Value: len(strings.Fields(content))},
	)
	return tags
}
