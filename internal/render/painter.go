//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mosaic/internal/core"
	"mosaic/internal/layout"
)

// TilePainter draws a canvas onto an ebiten screen, uploading each source
// image to the GPU once.
type TilePainter struct {
	src    core.TileSource
	images []*ebiten.Image
}

// NewTilePainter uploads every image of src.
func NewTilePainter(src core.TileSource) *TilePainter {
	tp := &TilePainter{src: src, images: make([]*ebiten.Image, src.Len())}
	for i := range tp.images {
		if img := src.Image(i); img != nil {
			tp.images[i] = ebiten.NewImageFromImage(img)
		}
	}
	return tp
}

// Source returns the tile source the painter was built for.
func (tp *TilePainter) Source() core.TileSource { return tp.src }

// Draw fills the background and paints every visible tile.
func (tp *TilePainter) Draw(screen *ebiten.Image, c layout.Canvas, translation core.Point) {
	screen.Fill(Background)
	b := screen.Bounds()
	viewport := core.Size{W: b.Dx(), H: b.Dy()}
	extent := c.Config.TileExtent()

	Walk(c, translation, func(p Placement) {
		if !Visible(p.Pos, extent, viewport) || p.Source >= len(tp.images) {
			return
		}
		img := tp.images[p.Source]
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Translate(p.Pos.X, p.Pos.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	})
}

// Dispose releases the GPU images.
func (tp *TilePainter) Dispose() {
	for _, img := range tp.images {
		if img != nil {
			img.Dispose()
		}
	}
	tp.images = nil
}
