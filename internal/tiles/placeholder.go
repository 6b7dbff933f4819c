package tiles

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"mosaic/internal/core"
)

// BlankColor fills the tile used by blank stages.
var BlankColor = color.RGBA{R: 0x33, G: 0x9b, B: 0xd6, A: 0xff}

// NewPlaceholder generates n flat rounded-square tiles in deterministic
// pastel colours derived from seed.
func NewPlaceholder(n, size int, seed int64) *Set {
	rng := core.NewRNG(seed)
	ids := make([]string, 0, n)
	images := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("placeholder-%d", i))
		images = append(images, roundedTile(size, rng.Pastel()))
	}
	return NewSet(ids, images)
}

// Blank returns a single-tile set used to fill stages with no content.
func Blank(size int) *Set {
	return NewSet([]string{"blank"}, []image.Image{roundedTile(size, BlankColor)})
}

func roundedTile(size int, fill color.Color) image.Image {
	if size < 1 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), CornerRadius)
	dc.SetColor(fill)
	dc.Fill()
	return dc.Image()
}
