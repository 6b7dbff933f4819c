package pan

import "mosaic/internal/core"

// Bounds limits the canvas translation per axis. Max is zero: the canvas'
// leading edge sits on the viewport's leading edge. Min puts the trailing
// edges together.
type Bounds struct {
	Min core.Point
	Max core.Point
}

// NewBounds derives bounds from the canvas extent and the viewport size.
func NewBounds(canvas core.Dim, viewport core.Size) Bounds {
	return Bounds{
		Min: core.Pt(-(canvas.W - float64(viewport.W)), -(canvas.H - float64(viewport.H))),
		Max: core.Pt(0, 0),
	}
}

// Locked reports whether the axis has no room to pan, which happens when the
// canvas is no larger than the viewport along it.
func (b Bounds) Locked(a Axis) bool {
	return a.of(b.Min) >= a.of(b.Max)
}

// Contains reports whether v lies strictly inside the bounds on axis a.
func (b Bounds) Contains(a Axis, v float64) bool {
	return a.of(b.Min) < v && v < a.of(b.Max)
}

// Axis selects the X or Y component of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func (a Axis) of(p core.Point) float64 {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

func (a Axis) ofDim(d core.Dim) float64 {
	if a == AxisY {
		return d.H
	}
	return d.W
}

func (a Axis) set(p *core.Point, v float64) {
	if a == AxisY {
		p.Y = v
		return
	}
	p.X = v
}
