// Package stage runs the mosaic pipeline: a tile count is resolved into a
// grid, laid out on a canvas, and handed to a pan controller. A Stage is one
// immutable result of that pipeline plus the controller that pans it.
package stage

import (
	"log/slog"

	"github.com/google/uuid"

	"mosaic/internal/core"
	"mosaic/internal/grid"
	"mosaic/internal/layout"
	"mosaic/internal/pan"
	"mosaic/internal/tiles"
)

// Config bundles the grid and layout settings used to build a stage.
type Config struct {
	Grid   grid.Options
	Layout layout.Config
}

// DefaultConfig returns the default grid and layout settings.
func DefaultConfig() Config {
	return Config{Grid: grid.DefaultOptions(), Layout: layout.DefaultConfig()}
}

// Stage is one display session.
type Stage struct {
	ID uuid.UUID
	// Source is what tile source indexes refer to. Blank stages use a
	// single placeholder tile.
	Source core.TileSource
	Canvas layout.Canvas
	Pan    *pan.Controller
}

// Build resolves the source's tile count, lays the canvas out for viewport
// and attaches a fresh pan controller.
func Build(src core.TileSource, cfg Config, viewport core.Size) *Stage {
	count := 0
	if src != nil {
		count = src.Len()
	}
	res := grid.NewResolver(cfg.Grid).Resolve(count)
	if res.Blank {
		size := int(cfg.Layout.TileSize)
		if size < 1 {
			size = tiles.DefaultSize
		}
		src = tiles.Blank(size)
	}
	canvas := layout.Build(src.Len(), res, cfg.Layout, viewport)

	s := &Stage{
		ID:     uuid.New(),
		Source: src,
		Canvas: canvas,
		Pan:    pan.New(canvas.Size, canvas.Repeat, canvas.Offset, viewport),
	}
	core.Logger().Info("stage built",
		slog.String("stage", s.ID.String()),
		slog.Int("requested", res.Requested),
		slog.Int("count", res.Count),
		slog.Int("columns", res.Columns),
		slog.Int("rows", res.Rows),
		slog.Bool("blank", res.Blank),
		slog.Float64("width", canvas.Size.W),
		slog.Float64("height", canvas.Size.H),
	)
	return s
}

// Blank reports whether the stage shows placeholders only.
func (s *Stage) Blank() bool { return s.Canvas.Resolution.Blank }

// Translation is the current canvas translation.
func (s *Stage) Translation() core.Point { return s.Pan.Translation() }

// Teardown detaches the pan controller so no further pointer event can move
// this stage's canvas.
func (s *Stage) Teardown() {
	if s.Pan.Detached() {
		return
	}
	s.Pan.Detach()
	core.Logger().Info("stage torn down", slog.String("stage", s.ID.String()))
}
