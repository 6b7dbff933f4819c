package app

import "mosaic/internal/core"

// PointerSink receives pointer transitions in viewport coordinates.
// stage.Director implements it.
type PointerSink interface {
	Press(p core.Point)
	Move(p core.Point)
	Release(p core.Point)
	Leave()
}

// PointerSample is the pointer state observed on one tick.
type PointerSample struct {
	Pos    core.Point
	Down   bool
	Inside bool
}

// pointerTracker turns per-tick pointer samples into press/move/release
// events. A drag starts only on a fresh press inside the canvas; leaving the
// canvas ends it, and the button must come up before another drag can begin.
type pointerTracker struct {
	held     bool
	dragging bool
	last     core.Point
}

func (t *pointerTracker) Feed(s PointerSample, sink PointerSink) {
	justPressed := s.Down && !t.held
	t.held = s.Down

	switch {
	case t.dragging && !s.Down:
		t.dragging = false
		sink.Release(s.Pos)
	case t.dragging && !s.Inside:
		t.dragging = false
		sink.Leave()
	case t.dragging:
		if s.Pos != t.last {
			t.last = s.Pos
			sink.Move(s.Pos)
		}
	case justPressed && s.Inside:
		t.dragging = true
		t.last = s.Pos
		sink.Press(s.Pos)
	}
}

// canvasArea is the part of the window left of the HUD, where the mosaic can
// be panned.
func canvasArea(window core.Size, hudWidth int) core.Size {
	return core.Size{W: max(window.W-hudWidth, 0), H: window.H}
}

// inside reports whether (x, y) lies in the canvas area left of the HUD.
func inside(x, y int, window core.Size, hudWidth int) bool {
	area := canvasArea(window, hudWidth)
	return x >= 0 && y >= 0 && x < area.W && y < area.H
}
