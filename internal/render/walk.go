// Package render turns a laid-out canvas into draw calls. Walk produces the
// per-tile placements; Snapshot and the ebiten TilePainter consume them.
package render

import (
	"image/color"

	"mosaic/internal/core"
	"mosaic/internal/layout"
)

// Background is the colour behind the canvas.
var Background = color.RGBA{R: 0x00, G: 0x82, B: 0xca, A: 0xff}

// Placement is everything a render sink needs to draw one tile.
type Placement struct {
	Block  int
	Tile   int
	Source int
	// Pos is the tile's top-left corner in viewport coordinates.
	Pos   core.Point
	Scale float64
}

// Walk calls fn for every tile of every block, offset by translation.
func Walk(c layout.Canvas, translation core.Point, fn func(Placement)) {
	for _, b := range c.Blocks {
		origin := translation.Add(b.Pos)
		for _, t := range c.Tiles {
			fn(Placement{
				Block:  b.Index,
				Tile:   t.Index,
				Source: t.Source,
				Pos:    origin.Add(t.Pos),
				Scale:  c.Config.Scale,
			})
		}
	}
}

// Visible reports whether a tile of the given rendered extent placed at p
// intersects the viewport.
func Visible(p core.Point, extent float64, viewport core.Size) bool {
	return p.X+extent > 0 && p.Y+extent > 0 && p.X < float64(viewport.W) && p.Y < float64(viewport.H)
}
