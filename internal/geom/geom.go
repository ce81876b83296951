// Package geom keeps a free-flowing text buffer laid out as fixed-size
// virtual pages. It computes the rendered page height from content and
// interprets zoom input. Pure package, no I/O.
//
// All measurement happens at zoom = 1. Zoom scales the page bounding
// box only and never the logical text width content wraps against.
package geom

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Nominal page metrics: A4 at 96 DPI with a monospaced 12pt grid.
const (
	PageWidth  = 794
	PageHeight = 1123

	CharWidth  = 8
	LineHeight = 24
	MarginX    = 67
	MarginY    = 57

	// TextColumns is the logical wrap width in character cells.
	TextColumns = (PageWidth - 2*MarginX) / CharWidth

	TabCells = 4
)

// Zoom bounds. Steps are applied by the caller; the engine only clamps
// and rounds.
const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	ZoomStep = 0.25
)

// Page is the geometry state of one editor session: rendered height in
// pixels (never below PageHeight) and the current zoom factor.
type Page struct {
	Height int
	Zoom   float64
}

// NewPage returns a page at nominal size and zoom 1.
func NewPage() Page {
	return Page{Height: PageHeight, Zoom: 1.0}
}

// SyncHeight resizes the page to fit content: the maximum of the
// measured natural height and the nominal page height, so a page never
// shrinks below one physical page.
func (p Page) SyncHeight(natural int) Page {
	if natural < PageHeight {
		natural = PageHeight
	}
	p.Height = natural
	return p
}

// ClampScroll restores a prior scroll offset against the current
// height. Height changes must not jump the viewport, so the offset is
// kept as-is unless it now points past the page.
func (p Page) ClampScroll(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > p.Height {
		return p.Height
	}
	return offset
}

// ChangeZoom adds delta to the zoom factor, clamped to
// [MinZoom, MaxZoom] and rounded to 2 decimals so repeated stepped
// increments cannot accumulate floating-point drift.
func (p Page) ChangeZoom(delta float64) Page {
	z := p.Zoom + delta
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	p.Zoom = math.Round(z*100) / 100
	return p
}

// ResetZoom sets zoom to exactly 1.
func (p Page) ResetZoom() Page {
	p.Zoom = 1.0
	return p
}

// ScaledBounds returns the page bounding box with zoom applied.
func (p Page) ScaledBounds() (w, h int) {
	return int(math.Round(PageWidth * p.Zoom)),
		int(math.Round(float64(p.Height) * p.Zoom))
}

// NaturalHeight measures the unconstrained pixel height needed to
// render content at the logical wrap width. An empty document still
// occupies one line.
func NaturalHeight(content string) int {
	lines := len(Wrap(content, TextColumns))
	return lines*LineHeight + 2*MarginY
}

// Wrap splits content into visual lines no wider than cols cells.
// Width is measured in terminal cells (double-width runes count as
// two), tabs expand to TabCells. Empty content yields a single empty
// line.
func Wrap(content string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var out []string
	for _, raw := range strings.Split(content, "\n") {
		out = append(out, wrapLine(raw, cols)...)
	}
	return out
}

func wrapLine(line string, cols int) []string {
	if line == "" {
		return []string{""}
	}
	var out []string
	var cur strings.Builder
	width := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if r == '\t' {
			w = TabCells
		}
		if width+w > cols && width > 0 {
			out = append(out, cur.String())
			cur.Reset()
			width = 0
		}
		cur.WriteRune(r)
		width += w
	}
	out = append(out, cur.String())
	return out
}
