// Command mosaic-snapshot builds a stage without a window, replays a drag
// and writes the visible viewport to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mosaic/internal/app"
	"mosaic/internal/core"
	"mosaic/internal/render"
	"mosaic/internal/stage"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "mosaic.png", "output PNG path")
	dragX := flag.Float64("drag-x", 0, "horizontal drag distance in pixels")
	dragY := flag.Float64("drag-y", 0, "vertical drag distance in pixels")
	steps := flag.Int("steps", 8, "pointer moves used to replay the drag")
	flag.Parse()
	cfg.InstallLogger(os.Stderr)

	src, err := cfg.OpenSource()
	if err != nil {
		log.Fatal(err)
	}
	stageCfg, err := cfg.StageConfig()
	if err != nil {
		log.Fatal(err)
	}
	director := stage.NewDirector(src, stageCfg, cfg.Viewport())

	replayDrag(director, cfg.Viewport(), core.Pt(*dragX, *dragY), *steps)

	s := director.Stage()
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WritePNG(f, s.Canvas, s.Source, s.Translation(), cfg.Viewport()); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	res := s.Canvas.Resolution
	t := s.Translation()
	fmt.Printf("stage %s: %d sources -> %d tiles (%dx%d), canvas %.0fx%.0f\n",
		s.ID, res.Requested, res.Count, res.Columns, res.Rows, s.Canvas.Size.W, s.Canvas.Size.H)
	fmt.Printf("translation (%.1f, %.1f) after %d wraps, wrote %s\n", t.X, t.Y, s.Pan.Wraps(), *out)
}

// replayDrag presses at the viewport centre and moves by delta in equal steps.
func replayDrag(d *stage.Director, viewport core.Size, delta core.Point, steps int) {
	if delta == (core.Point{}) {
		return
	}
	if steps < 1 {
		steps = 1
	}
	from := core.Pt(float64(viewport.W)/2, float64(viewport.H)/2)
	d.Press(from)
	p := from
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		p = from.Add(core.Pt(delta.X*f, delta.Y*f))
		d.Move(p)
	}
	d.Release(p)
}
