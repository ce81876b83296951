package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"pagepad/internal/geom"
)

var pageRule = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

// WritePNG renders the whole page surface to a PNG at path. Content is
// wrapped at the logical text width (zoom-independent); the page's
// zoom scales the output bounding box, font and margins together.
func WritePNG(path, content string, page geom.Page) error {
	w, h := page.ScaledBounds()
	z := page.Zoom

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    16 * z,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Page boundaries, so the pagination stays visible in the artifact.
	dc.SetColor(pageRule)
	dc.SetLineWidth(1.0)
	for y := geom.PageHeight; y < page.Height; y += geom.PageHeight {
		fy := float64(y) * z
		dc.DrawLine(0, fy, float64(w), fy)
		dc.Stroke()
	}

	dc.SetColor(color.Black)
	lineH := float64(geom.LineHeight) * z
	x := float64(geom.MarginX) * z
	y := float64(geom.MarginY)*z + lineH*0.75
	for _, line := range geom.Wrap(content, geom.TextColumns) {
		if line != "" {
			dc.DrawString(strings.ReplaceAll(line, "\t", strings.Repeat(" ", geom.TabCells)), x, y)
		}
		y += lineH
	}

	return dc.SavePNG(path)
}
