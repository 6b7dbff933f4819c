package app

import (
	"flag"
	"io"
	"log/slog"
	"strconv"

	"mosaic/internal/core"
	"mosaic/internal/grid"
	"mosaic/internal/layout"
	"mosaic/internal/stage"
	"mosaic/internal/tiles"
)

// Config represents the command-line parameters shared by the mosaic tools.
type Config struct {
	Source           string
	Dir              string
	PlaceholderCount int
	Seed             int64

	MinColumns int
	Strategy   string

	TileSize     int
	Scale        float64
	Padding      float64
	Blocks       int
	BlockColumns int

	Width    int
	Height   int
	TPS      int
	HUDWidth int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	l := layout.DefaultConfig()
	g := grid.DefaultOptions()
	return &Config{
		Source:           "placeholder",
		PlaceholderCount: 17,
		Seed:             42,
		MinColumns:       g.MinColumns,
		Strategy:         string(g.Strategy),
		TileSize:         tiles.DefaultSize,
		Scale:            l.Scale,
		Padding:          l.Padding,
		Blocks:           l.BlockCount,
		BlockColumns:     l.BlockColumns,
		Width:            1280,
		Height:           800,
		TPS:              60,
		HUDWidth:         240,
		LogLevel:         "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "tile source (dir|placeholder)")
	fs.StringVar(&c.Dir, "dir", c.Dir, "image directory for -source=dir")
	fs.IntVar(&c.PlaceholderCount, "placeholder-count", c.PlaceholderCount, "number of generated tiles for -source=placeholder")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for placeholder colours")
	fs.IntVar(&c.MinColumns, "min-columns", c.MinColumns, "minimum tiles per block side")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "column strategy (balanced|sqrt)")
	fs.IntVar(&c.TileSize, "tile-size", c.TileSize, "tile edge length in pixels before scaling")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "tile draw scale")
	fs.Float64Var(&c.Padding, "padding", c.Padding, "gap between tiles and blocks")
	fs.IntVar(&c.Blocks, "blocks", c.Blocks, "number of repeated blocks")
	fs.IntVar(&c.BlockColumns, "block-columns", c.BlockColumns, "blocks per row")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width, 0 hides it")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug|info|warn|error)")
}

// Viewport returns the initial viewport size.
func (c *Config) Viewport() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// StageConfig converts the flags into grid and layout settings.
func (c *Config) StageConfig() (stage.Config, error) {
	strategy, err := grid.ParseStrategy(c.Strategy)
	if err != nil {
		return stage.Config{}, err
	}
	return stage.Config{
		Grid: grid.Options{
			MinColumns:  c.MinColumns,
			Placeholder: c.MinColumns * c.MinColumns,
			Strategy:    strategy,
		},
		Layout: layout.Config{
			TileSize:     float64(c.TileSize),
			Scale:        c.Scale,
			Padding:      c.Padding,
			BlockCount:   c.Blocks,
			BlockColumns: c.BlockColumns,
		},
	}, nil
}

// SourceOptions is the factory map handed to the tile source registry.
func (c *Config) SourceOptions() map[string]string {
	return map[string]string{
		"dir":   c.Dir,
		"size":  strconv.Itoa(c.TileSize),
		"count": strconv.Itoa(c.PlaceholderCount),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
}

// OpenSource builds the configured tile source.
func (c *Config) OpenSource() (core.TileSource, error) {
	return tiles.Open(c.Source, c.SourceOptions())
}

// InstallLogger routes the shared mosaic logger to w at the configured level.
func (c *Config) InstallLogger(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: core.ParseLevel(c.LogLevel)})
	core.SetLogger(slog.New(h))
}
