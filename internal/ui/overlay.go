//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mosaic/internal/core"
	"mosaic/internal/layout"
	"mosaic/internal/pan"
	"mosaic/internal/render"
)

// Overlay draws optional debugging visuals on top of the mosaic.
//
//	1: block outlines
//	2: canvas edge and the repeat distance from the viewport origin
//	3: source index on every visible tile
type Overlay struct {
	showBlocks  bool
	showBounds  bool
	showSources bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBlocks = !o.showBlocks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSources = !o.showSources
	}
}

// Draw renders the enabled layers for canvas c panned by ctrl.
func (o *Overlay) Draw(screen *ebiten.Image, c layout.Canvas, ctrl *pan.Controller) {
	tr := ctrl.Translation()
	if o.showBlocks {
		for _, b := range c.Blocks {
			origin := tr.Add(b.Pos)
			o.drawRect(screen, origin, b.Size, 2, color.RGBA{R: 255, G: 210, B: 60, A: 200})
			text.Draw(screen, "block "+strconv.Itoa(b.Index), basicfont.Face7x13, int(origin.X)+6, int(origin.Y)+16, color.White)
		}
	}
	if o.showBounds {
		o.drawRect(screen, tr, c.Size, 3, color.RGBA{R: 240, G: 80, B: 80, A: 220})
		o.drawRect(screen, core.Pt(0, 0), c.Repeat, 1, color.RGBA{R: 80, G: 240, B: 120, A: 200})
		o.drawPoint(screen, tr.X, tr.Y, 8, color.RGBA{R: 240, G: 80, B: 80, A: 255})
	}
	if o.showSources {
		b := screen.Bounds()
		viewport := core.Size{W: b.Dx(), H: b.Dy()}
		extent := c.Config.TileExtent()
		render.Walk(c, tr, func(p render.Placement) {
			if !render.Visible(p.Pos, extent, viewport) {
				return
			}
			text.Draw(screen, strconv.Itoa(p.Source), basicfont.Face7x13, int(p.Pos.X)+4, int(p.Pos.Y)+14, color.Black)
		})
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, at core.Point, size core.Dim, thickness float64, col color.RGBA) {
	x1, y1 := at.X, at.Y
	x2, y2 := at.X+size.W, at.Y+size.H
	o.drawLine(screen, x1, y1, x2, y1, thickness, col)
	o.drawLine(screen, x2, y1, x2, y2, thickness, col)
	o.drawLine(screen, x2, y2, x1, y2, thickness, col)
	o.drawLine(screen, x1, y2, x1, y1, thickness, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
