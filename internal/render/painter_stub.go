//go:build !ebiten

package render

import "mosaic/internal/core"

// TilePainter is a placeholder used when the ebiten build tag is absent.
type TilePainter struct {
	src core.TileSource
}

// NewTilePainter returns a painter that draws nothing.
func NewTilePainter(src core.TileSource) *TilePainter { return &TilePainter{src: src} }

// Source returns the tile source the painter was built for.
func (tp *TilePainter) Source() core.TileSource { return tp.src }

// Draw is a no-op in headless builds.
func (tp *TilePainter) Draw(any, any, any) {}

// Dispose is a no-op in headless builds.
func (tp *TilePainter) Dispose() {}
