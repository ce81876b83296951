package geom

import (
	"strings"
	"testing"
)

func TestEmptyContentReportsNominalHeight(t *testing.T) {
	p := NewPage().SyncHeight(NaturalHeight(""))
	if p.Height != PageHeight {
		t.Fatalf("empty document height = %d, want nominal %d", p.Height, PageHeight)
	}
}

func TestTallContentGrowsPastOnePage(t *testing.T) {
	content := strings.Repeat("line\n", 200)
	natural := NaturalHeight(content)
	p := NewPage().SyncHeight(natural)
	if p.Height < PageHeight {
		t.Fatalf("height %d below nominal minimum", p.Height)
	}
	if p.Height < natural {
		t.Fatalf("height %d below measured natural height %d", p.Height, natural)
	}
}

func TestSyncHeightNeverShrinksBelowNominal(t *testing.T) {
	p := NewPage().SyncHeight(10)
	if p.Height != PageHeight {
		t.Fatalf("short content must keep one full page, got %d", p.Height)
	}
}

func TestChangeZoomClampsAtBounds(t *testing.T) {
	p := NewPage()
	p = p.ChangeZoom(+100)
	if p.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want clamp to %v", p.Zoom, MaxZoom)
	}
	// Clamped value is idempotent under further over-steps.
	p = p.ChangeZoom(+ZoomStep)
	if p.Zoom != MaxZoom {
		t.Fatalf("zoom = %v after over-step, want %v", p.Zoom, MaxZoom)
	}
	p = p.ChangeZoom(-100)
	if p.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want clamp to %v", p.Zoom, MinZoom)
	}
}

func TestRepeatedZoomStepsDoNotDrift(t *testing.T) {
	p := NewPage()
	for i := 0; i < 50; i++ {
		p = p.ChangeZoom(+ZoomStep)
		p = p.ChangeZoom(-ZoomStep)
	}
	if p.Zoom != 1.0 {
		t.Fatalf("zoom drifted to %v after paired steps", p.Zoom)
	}
}

func TestResetZoomIsExact(t *testing.T) {
	p := NewPage().ChangeZoom(+ZoomStep).ChangeZoom(+ZoomStep)
	p = p.ResetZoom()
	if p.Zoom != 1.0 {
		t.Fatalf("reset zoom = %v, want exactly 1.0", p.Zoom)
	}
}

func TestScaledBoundsLeaveLogicalWidthAlone(t *testing.T) {
	p := NewPage().ChangeZoom(+1.0) // 2.0
	w, h := p.ScaledBounds()
	if w != 2*PageWidth || h != 2*p.Height {
		t.Fatalf("scaled bounds = %dx%d, want %dx%d", w, h, 2*PageWidth, 2*p.Height)
	}
	// Measurement stays at zoom 1: the same content wraps identically
	// whatever the zoom.
	if NaturalHeight("hello") != NaturalHeight("hello") {
		t.Fatalf("measurement must be zoom-independent")
	}
}

func TestClampScroll(t *testing.T) {
	p := NewPage()
	if got := p.ClampScroll(-3); got != 0 {
		t.Fatalf("negative offset clamped to %d, want 0", got)
	}
	if got := p.ClampScroll(500); got != 500 {
		t.Fatalf("in-range offset changed to %d", got)
	}
	if got := p.ClampScroll(p.Height + 50); got != p.Height {
		t.Fatalf("past-end offset clamped to %d, want %d", got, p.Height)
	}
}

func TestWrapCountsCellsNotRunes(t *testing.T) {
	// Double-width runes occupy two cells.
	wide := strings.Repeat("字", 10)
	lines := Wrap(wide, 10)
	if len(lines) != 2 {
		t.Fatalf("10 double-width runes at 10 cols = %d lines, want 2", len(lines))
	}
}

func TestWrapKeepsEmptyLines(t *testing.T) {
	lines := Wrap("a\n\nb", 80)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (blank line preserved)", len(lines))
	}
	if lines[1] != "" {
		t.Fatalf("middle line = %q, want empty", lines[1])
	}
}

func TestWrapLongLine(t *testing.T) {
	lines := Wrap(strings.Repeat("x", 25), 10)
	if len(lines) != 3 {
		t.Fatalf("25 cells at 10 cols = %d lines, want 3", len(lines))
	}
}
