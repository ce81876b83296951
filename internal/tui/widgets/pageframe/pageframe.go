package pageframe

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"pagepad/internal/geom"
)

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// View wraps rendered content in a page-shaped frame. The frame's
// width follows the zoomed page bounding box, clamped to the terminal;
// the content inside keeps its logical layout width regardless of
// zoom.
func View(content string, page geom.Page, maxWidth int) string {
	inner := int(math.Round(float64(geom.TextColumns) * page.Zoom))
	if w := lipgloss.Width(content); inner < w {
		inner = w
	}
	// Border cells plus horizontal padding.
	if maxWidth > 0 && inner+4 > maxWidth {
		inner = maxWidth - 4
	}
	if inner < 1 {
		inner = 1
	}
	return frameStyle.Width(inner + 2).Render(content)
}

// PageCount reports how many nominal pages the current surface spans.
func PageCount(page geom.Page) int {
	n := int(math.Ceil(float64(page.Height) / float64(geom.PageHeight)))
	if n < 1 {
		n = 1
	}
	return n
}
