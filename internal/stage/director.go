package stage

import (
	"fmt"
	"strconv"

	"mosaic/internal/core"
)

// Director owns the active stage. It routes pointer events to that stage
// only and rebuilds it when the source, the configuration or a HUD parameter
// changes. It is driven from a single goroutine.
type Director struct {
	cfg      Config
	source   core.TileSource
	viewport core.Size
	stage    *Stage
	click    clickTracker

	onSelect func(Selection)
	onReady  func(*Stage)
}

// NewDirector builds the first stage immediately.
func NewDirector(src core.TileSource, cfg Config, viewport core.Size) *Director {
	d := &Director{cfg: cfg, source: src, viewport: viewport}
	d.stage = Build(src, cfg, viewport)
	return d
}

// Stage returns the active stage.
func (d *Director) Stage() *Stage { return d.stage }

// Config returns the configuration the active stage was built with.
func (d *Director) Config() Config { return d.cfg }

// Viewport returns the last known viewport size.
func (d *Director) Viewport() core.Size { return d.viewport }

// OnSelect registers the callback fired when a tile is clicked.
func (d *Director) OnSelect(fn func(Selection)) { d.onSelect = fn }

// OnStageReady registers the callback fired after every rebuild.
func (d *Director) OnStageReady(fn func(*Stage)) { d.onReady = fn }

// Rebuild tears down the active stage and builds a replacement from the
// current source, configuration and viewport.
func (d *Director) Rebuild() {
	if d.stage != nil {
		d.stage.Teardown()
	}
	d.click.cancel()
	d.stage = Build(d.source, d.cfg, d.viewport)
	if d.onReady != nil {
		d.onReady(d.stage)
	}
}

// SetSource swaps the tile source and rebuilds.
func (d *Director) SetSource(src core.TileSource) {
	d.source = src
	d.Rebuild()
}

// SetConfig swaps the configuration and rebuilds.
func (d *Director) SetConfig(cfg Config) {
	d.cfg = cfg
	d.Rebuild()
}

// Resize records a new viewport size and recomputes the pan bounds.
func (d *Director) Resize(viewport core.Size) {
	if viewport == d.viewport {
		return
	}
	d.viewport = viewport
	d.stage.Pan.Resize(viewport)
}

// Press starts a drag and arms click detection.
func (d *Director) Press(p core.Point) {
	d.stage.Pan.Press(p)
	d.click.press()
}

// Move forwards pointer motion; motion during a drag rules out a click.
func (d *Director) Move(p core.Point) {
	if d.stage.Pan.Move(p) {
		d.click.moved()
	}
}

// Release ends the drag. If nothing moved since the press and p lies on a
// tile of a non-blank stage, the selection callback fires.
func (d *Director) Release(p core.Point) {
	d.stage.Pan.Release()
	if !d.click.release() || d.stage.Blank() {
		return
	}
	tile, source, ok := d.stage.Canvas.HitTest(p, d.stage.Translation())
	if !ok || d.onSelect == nil {
		return
	}
	d.onSelect(Selection{
		Stage:  d.stage.ID,
		Tile:   tile,
		Source: source,
		ID:     d.stage.Source.ID(source),
	})
}

// Leave ends a drag when the pointer exits the canvas. No click fires.
func (d *Director) Leave() {
	d.stage.Pan.Leave()
	d.click.cancel()
}

// Parameters describes the active stage for the HUD.
func (d *Director) Parameters() core.ParameterSnapshot {
	s := d.stage
	res := s.Canvas.Resolution
	tr := s.Translation()
	b := s.Pan.Bounds()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("sources", "Sources", s.Source.Len()),
				intParam("count", "Tiles per block", res.Count),
				intParam("padded", "Padded", res.Padded()),
				intParam("columns", "Columns", res.Columns),
				intParam("rows", "Rows", res.Rows),
				intParam("min_columns", "Min columns", d.cfg.Grid.MinColumns),
				{Key: "blank", Label: "Blank", Type: core.ParamTypeBool, Value: strconv.FormatBool(res.Blank)},
			},
		},
		{
			Name: "Layout",
			Params: []core.Parameter{
				floatParam("scale", "Scale", s.Canvas.Config.Scale),
				floatParam("padding", "Padding", s.Canvas.Config.Padding),
				intParam("blocks", "Blocks", s.Canvas.Config.BlockCount),
				intParam("block_columns", "Block columns", s.Canvas.Config.BlockColumns),
			},
		},
		{
			Name:    "Pan",
			Summary: s.Pan.State().String(),
			Params: []core.Parameter{
				floatParam("x", "X", tr.X),
				floatParam("y", "Y", tr.Y),
				floatParam("min_x", "Min X", b.Min.X),
				floatParam("min_y", "Min Y", b.Min.Y),
				intParam("wraps", "Wraps", s.Pan.Wraps()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (d *Director) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "min_columns", Label: "Min columns", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 12, HasMin: true, HasMax: true},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.2, Max: 2, HasMin: true, HasMax: true},
		{Key: "padding", Label: "Padding", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 40, HasMin: true, HasMax: true},
		{Key: "blocks", Label: "Blocks", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 25, HasMin: true, HasMax: true},
		{Key: "block_columns", Label: "Block columns", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 5, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting and rebuilds the stage.
func (d *Director) SetIntParameter(key string, value int) bool {
	cfg := d.cfg
	switch key {
	case "min_columns":
		if value < 1 {
			return false
		}
		cfg.Grid.MinColumns = value
		cfg.Grid.Placeholder = value * value
	case "blocks":
		if value < 1 {
			return false
		}
		cfg.Layout.BlockCount = value
	case "block_columns":
		if value < 1 {
			return false
		}
		cfg.Layout.BlockColumns = value
	default:
		return false
	}
	d.SetConfig(cfg)
	return true
}

// SetFloatParameter updates a floating point setting and rebuilds the stage.
func (d *Director) SetFloatParameter(key string, value float64) bool {
	cfg := d.cfg
	switch key {
	case "scale":
		if value <= 0 {
			return false
		}
		cfg.Layout.Scale = value
	case "padding":
		if value < 0 {
			return false
		}
		cfg.Layout.Padding = value
	default:
		return false
	}
	d.SetConfig(cfg)
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2f", v)}
}
