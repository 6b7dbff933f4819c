package tiles

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// CornerRadius rounds the corners of every clipped tile.
const CornerRadius = 5

// Clip centre-crops img to a square, scales it to size×size and masks it to
// a rounded square.
func Clip(img image.Image, size int) image.Image {
	if size < 1 {
		size = 1
	}
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, squareCrop(img.Bounds()), draw.Src, nil)

	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), CornerRadius)
	dc.Clip()
	dc.DrawImage(scaled, 0, 0)
	return dc.Image()
}

// squareCrop returns the largest square centred in r.
func squareCrop(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	side := min(w, h)
	x := r.Min.X + (w-side)/2
	y := r.Min.Y + (h-side)/2
	return image.Rect(x, y, x+side, y+side)
}
