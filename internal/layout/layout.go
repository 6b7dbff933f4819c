// Package layout arranges resolved tiles into repeated blocks on a virtual
// canvas. Everything it returns is plain data; nothing here knows about input
// or drawing.
package layout

import (
	"math"

	"mosaic/internal/core"
	"mosaic/internal/grid"
)

// Config holds the fixed geometry of a stage.
type Config struct {
	// TileSize is the unscaled edge length of a square tile in pixels.
	TileSize float64
	Scale    float64
	// Padding separates neighbouring tiles and neighbouring blocks.
	Padding float64
	// BlockCount blocks are placed BlockColumns to a row.
	BlockCount   int
	BlockColumns int
}

// DefaultConfig returns a 3×3 arrangement of 260px tiles drawn at 70%.
func DefaultConfig() Config {
	return Config{TileSize: 260, Scale: 0.7, Padding: 10, BlockCount: 9, BlockColumns: 3}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.TileSize <= 0 {
		c.TileSize = d.TileSize
	}
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.BlockCount < 1 {
		c.BlockCount = 1
	}
	if c.BlockColumns < 1 {
		c.BlockColumns = 1
	}
	return c
}

// TileExtent is the rendered edge length of one tile.
func (c Config) TileExtent() float64 { return c.TileSize * c.Scale }

// Tile is one positioned image inside a block.
type Tile struct {
	// Index is the tile's position in row-major order within its block.
	Index int
	// Source indexes the tile source; tiles beyond the source count reuse
	// sources cyclically.
	Source int
	// Pos is relative to the owning block.
	Pos core.Point
}

// Block is one repetition unit holding every tile of the stage.
type Block struct {
	Index int
	// Pos is relative to the canvas.
	Pos  core.Point
	Size core.Dim
}

// Canvas is the full virtual surface: BlockCount congruent blocks sharing the
// same tile arrangement.
type Canvas struct {
	Resolution grid.Resolution
	Config     Config
	// Tiles is the arrangement shared by every block.
	Tiles  []Tile
	Blocks []Block
	Size   core.Dim
	// Repeat is the first block's extent: the distance panning jumps back by
	// when it reaches a bound.
	Repeat core.Dim
	// Offset centres the canvas in the viewport it was built for.
	Offset core.Point
}

// Build lays out res.Count tiles per block across cfg.BlockCount blocks.
// Tile i maps to source i mod sourceCount; a sourceCount below one maps
// every tile to source 0.
func Build(sourceCount int, res grid.Resolution, cfg Config, viewport core.Size) Canvas {
	cfg = cfg.normalized()
	if sourceCount < 1 {
		sourceCount = 1
	}
	columns := res.Columns
	if columns < 1 {
		columns = 1
	}

	step := cfg.TileExtent() + cfg.Padding
	tiles := make([]Tile, res.Count)
	var x, y, maxX, maxY float64
	for i := range tiles {
		if i > 0 {
			if i%columns != 0 {
				x += step
			} else {
				x = 0
				y += step
			}
		}
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		tiles[i] = Tile{Index: i, Source: i % sourceCount, Pos: core.Pt(x, y)}
	}

	blockSize := core.Dim{W: maxX + cfg.TileExtent(), H: maxY + cfg.TileExtent()}
	if len(tiles) == 0 {
		blockSize = core.Dim{}
	}

	blocks := make([]Block, cfg.BlockCount)
	var bx, by float64
	var total core.Dim
	for k := 1; k <= cfg.BlockCount; k++ {
		b := Block{Index: k - 1, Pos: core.Pt(bx, by), Size: blockSize}
		blocks[k-1] = b
		total.W = math.Max(total.W, b.Pos.X+b.Size.W)
		total.H = math.Max(total.H, b.Pos.Y+b.Size.H)
		if k%cfg.BlockColumns != 0 {
			bx += blockSize.W + cfg.Padding
		} else {
			bx = 0
			by += blockSize.H + cfg.Padding
		}
	}

	c := Canvas{
		Resolution: res,
		Config:     cfg,
		Tiles:      tiles,
		Blocks:     blocks,
		Size:       total,
		Repeat:     blocks[0].Size,
	}
	c.Offset = c.Center(viewport)
	return c
}

// Center returns the translation that centres the canvas in viewport.
func (c Canvas) Center(viewport core.Size) core.Point {
	return core.Pt(
		-c.Size.W/2+float64(viewport.W)/2,
		-c.Size.H/2+float64(viewport.H)/2,
	)
}

// TileCount is the total number of tiles across all blocks.
func (c Canvas) TileCount() int { return len(c.Tiles) * len(c.Blocks) }

// HitTest finds the tile under p, a point in the canvas parent's space, given
// the canvas translation. Points in padding gaps or outside every block miss.
func (c Canvas) HitTest(p, translation core.Point) (tile, source int, ok bool) {
	local := p.Sub(translation)
	extent := c.Config.TileExtent()
	step := extent + c.Config.Padding
	columns := c.Resolution.Columns
	if columns < 1 || step <= 0 {
		return 0, 0, false
	}
	for _, b := range c.Blocks {
		rel := local.Sub(b.Pos)
		if rel.X < 0 || rel.Y < 0 || rel.X >= b.Size.W || rel.Y >= b.Size.H {
			continue
		}
		col := int(rel.X / step)
		row := int(rel.Y / step)
		if rel.X-float64(col)*step >= extent || rel.Y-float64(row)*step >= extent {
			return 0, 0, false
		}
		if col >= columns {
			return 0, 0, false
		}
		idx := row*columns + col
		if idx >= len(c.Tiles) {
			return 0, 0, false
		}
		return idx, c.Tiles[idx].Source, true
	}
	return 0, 0, false
}
