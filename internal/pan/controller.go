// Package pan implements drag panning over a canvas built from repeated
// blocks. When a drag carries the canvas past a bound, the translation is
// re-anchored one block back so the repetition appears endless.
package pan

import (
	"log/slog"
	"math"

	"mosaic/internal/core"
)

// State is the drag state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Controller owns the canvas translation for one stage. It is driven by a
// serialized stream of pointer events and is not safe for concurrent use.
type Controller struct {
	state       State
	anchor      core.Point
	translation core.Point

	canvas core.Dim
	repeat core.Dim
	bounds Bounds

	detached bool
	wraps    int
}

// New creates an idle controller. canvas is the total canvas extent, repeat
// the extent of one block, start the initial translation (normally the
// centring offset) and viewport the current viewport size.
func New(canvas, repeat core.Dim, start core.Point, viewport core.Size) *Controller {
	return &Controller{
		translation: start,
		canvas:      canvas,
		repeat:      repeat,
		bounds:      NewBounds(canvas, viewport),
	}
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// Translation returns the current canvas translation.
func (c *Controller) Translation() core.Point { return c.translation }

// Bounds returns the bounds derived from the latest viewport size.
func (c *Controller) Bounds() Bounds { return c.bounds }

// Wraps counts the re-anchors performed so far on either axis.
func (c *Controller) Wraps() int { return c.wraps }

// Press starts a drag anchored at p.
func (c *Controller) Press(p core.Point) {
	if c.detached || c.state != Idle {
		return
	}
	c.state = Dragging
	c.anchor = p
}

// Move pans by the motion since the previous event. It reports whether the
// event was part of a drag; moves while idle are ignored.
func (c *Controller) Move(p core.Point) bool {
	if c.detached || c.state != Dragging {
		return false
	}
	delta := p.Sub(c.anchor)
	c.step(AxisX, AxisX.of(delta))
	c.step(AxisY, AxisY.of(delta))
	c.anchor = p
	return true
}

// Release ends a drag. The translation is left untouched.
func (c *Controller) Release() {
	c.state = Idle
}

// Leave handles the pointer leaving the canvas. A drag in progress ends as if
// released.
func (c *Controller) Leave() {
	c.state = Idle
}

// Resize recomputes the bounds for a new viewport. A translation left outside
// the new bounds is clamped back in. An axis that becomes locked is centred,
// since it can no longer be panned.
func (c *Controller) Resize(viewport core.Size) {
	c.bounds = NewBounds(c.canvas, viewport)
	for _, a := range []Axis{AxisX, AxisY} {
		if c.bounds.Locked(a) {
			a.set(&c.translation, (a.of(c.bounds.Min)+a.of(c.bounds.Max))/2)
			continue
		}
		v := a.of(c.translation)
		v = math.Max(a.of(c.bounds.Min), math.Min(a.of(c.bounds.Max), v))
		a.set(&c.translation, v)
	}
}

// Detach stops the controller from reacting to any further event. Used when
// its stage is torn down.
func (c *Controller) Detach() {
	c.detached = true
	c.state = Idle
}

// Detached reports whether Detach has been called.
func (c *Controller) Detached() bool { return c.detached }

// step applies delta along one axis. Inside the bounds the candidate is taken
// as is. At or past a bound the translation jumps one block back towards the
// interior. The overshoot is capped at one block and the result is kept
// within one block of the bounds.
func (c *Controller) step(a Axis, delta float64) {
	if delta == 0 || c.bounds.Locked(a) {
		return
	}
	cur := a.of(c.translation)
	candidate := cur + delta
	lo, hi := a.of(c.bounds.Min), a.of(c.bounds.Max)
	repeat := a.ofDim(c.repeat)
	back := -repeat

	var next float64
	switch {
	case c.bounds.Contains(a, candidate):
		next = candidate
	case candidate >= hi:
		over := math.Min(candidate-hi, repeat)
		next = back - over
		c.logWrap(a, "max", candidate, next)
	default:
		over := math.Min(lo-candidate, repeat)
		next = lo - over - back
		c.logWrap(a, "min", candidate, next)
	}
	next = math.Max(lo-repeat, math.Min(hi+repeat, next))
	a.set(&c.translation, next)
}

func (c *Controller) logWrap(a Axis, edge string, candidate, next float64) {
	c.wraps++
	core.Logger().Debug("pan wrap",
		slog.String("axis", a.String()),
		slog.String("edge", edge),
		slog.Float64("candidate", candidate),
		slog.Float64("translation", next),
	)
}
