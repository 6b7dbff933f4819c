package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"mosaic/internal/core"
	"mosaic/internal/layout"
)

// Snapshot draws the canvas at translation into a viewport-sized image.
func Snapshot(c layout.Canvas, src core.TileSource, translation core.Point, viewport core.Size) image.Image {
	dc := gg.NewContext(max(viewport.W, 1), max(viewport.H, 1))
	dc.SetColor(Background)
	dc.Clear()

	extent := c.Config.TileExtent()
	Walk(c, translation, func(p Placement) {
		if !Visible(p.Pos, extent, viewport) {
			return
		}
		img := src.Image(p.Source)
		if img == nil {
			return
		}
		dc.Push()
		dc.Translate(p.Pos.X, p.Pos.Y)
		dc.Scale(p.Scale, p.Scale)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
	})
	return dc.Image()
}

// WritePNG renders a snapshot and encodes it to w.
func WritePNG(w io.Writer, c layout.Canvas, src core.TileSource, translation core.Point, viewport core.Size) error {
	dc := gg.NewContextForImage(Snapshot(c, src, translation, viewport))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
