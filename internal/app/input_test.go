package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mosaic/internal/core"
)

type recorder struct {
	events []string
}

func (r *recorder) Press(core.Point)   { r.events = append(r.events, "press") }
func (r *recorder) Move(core.Point)    { r.events = append(r.events, "move") }
func (r *recorder) Release(core.Point) { r.events = append(r.events, "release") }
func (r *recorder) Leave()             { r.events = append(r.events, "leave") }

func feed(samples ...PointerSample) []string {
	var (
		tr  pointerTracker
		rec recorder
	)
	for _, s := range samples {
		tr.Feed(s, &rec)
	}
	return rec.events
}

func down(x, y float64) PointerSample { return PointerSample{Pos: core.Pt(x, y), Down: true, Inside: true} }
func up(x, y float64) PointerSample   { return PointerSample{Pos: core.Pt(x, y), Inside: true} }

func TestPointerDragSequence(t *testing.T) {
	got := feed(up(0, 0), down(1, 1), down(1, 1), down(5, 1), up(5, 1))
	assert.Equal(t, []string{"press", "move", "release"}, got)
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	out := PointerSample{Pos: core.Pt(-1, 0), Down: true}
	got := feed(down(1, 1), out, down(2, 2), up(2, 2))
	assert.Equal(t, []string{"press", "leave"}, got, "re-entering with the button held must not press again")
}

func TestPointerPressOutsideIgnored(t *testing.T) {
	got := feed(PointerSample{Pos: core.Pt(900, 0), Down: true}, down(1, 1), up(1, 1))
	assert.Empty(t, got)
}

func TestPointerSecondPressAfterRelease(t *testing.T) {
	got := feed(down(1, 1), up(1, 1), down(2, 2), up(2, 2))
	assert.Equal(t, []string{"press", "release", "press", "release"}, got)
}

func TestCanvasAreaExcludesHUD(t *testing.T) {
	assert.Equal(t, core.Size{W: 1040, H: 800}, canvasArea(core.Size{W: 1280, H: 800}, 240))
	assert.Equal(t, core.Size{W: 1280, H: 800}, canvasArea(core.Size{W: 1280, H: 800}, 0))
	assert.Equal(t, core.Size{W: 0, H: 800}, canvasArea(core.Size{W: 100, H: 800}, 240))
}

func TestInsideExcludesHUD(t *testing.T) {
	vp := core.Size{W: 100, H: 50}
	assert.True(t, inside(0, 0, vp, 20))
	assert.True(t, inside(79, 49, vp, 20))
	assert.False(t, inside(80, 10, vp, 20))
	assert.False(t, inside(10, 50, vp, 20))
	assert.False(t, inside(-1, 10, vp, 0))
}
