package tiles

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"mosaic/internal/core"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// LoadDir decodes every image in dir, in file name order, and clips each to
// a size×size rounded square. Files that fail to decode are skipped and
// logged. An empty directory yields an empty Set.
func LoadDir(ctx context.Context, dir string, size int) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tiles: read dir %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	images := make([]image.Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(path)
			if err != nil {
				core.Logger().Warn("skipping tile image", slog.String("path", path), slog.Any("err", err))
				return nil
			}
			images[i] = Clip(img, size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tiles: load %q: %w", dir, err)
	}

	var ids []string
	var kept []image.Image
	for i, img := range images {
		if img == nil {
			continue
		}
		ids = append(ids, strings.TrimSuffix(filepath.Base(paths[i]), filepath.Ext(paths[i])))
		kept = append(kept, img)
	}
	core.Logger().Info("tile source loaded", slog.String("dir", dir), slog.Int("tiles", len(kept)), slog.Int("skipped", len(paths)-len(kept)))
	return NewSet(ids, kept), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
