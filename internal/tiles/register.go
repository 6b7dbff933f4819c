package tiles

import (
	"context"
	"fmt"
	"strconv"

	"mosaic/internal/core"
)

// DefaultSize is the edge length tiles are clipped to.
const DefaultSize = 260

// Open constructs the named source from the registry.
func Open(name string, cfg map[string]string) (core.TileSource, error) {
	factory, ok := core.Sources()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return factory(cfg)
}

func intValue(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}

func init() {
	core.Register("dir", func(cfg map[string]string) (core.TileSource, error) {
		dir := cfg["dir"]
		if dir == "" {
			return nil, fmt.Errorf("tiles: dir source needs a directory")
		}
		return LoadDir(context.Background(), dir, intValue(cfg, "size", DefaultSize))
	})
	core.Register("placeholder", func(cfg map[string]string) (core.TileSource, error) {
		seed := int64(intValue(cfg, "seed", 42))
		return NewPlaceholder(intValue(cfg, "count", 17), intValue(cfg, "size", DefaultSize), seed), nil
	})
}
