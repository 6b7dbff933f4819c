package core

import "image"

// Size describes integer pixel dimensions, typically the viewport.
type Size struct {
	W int
	H int
}

// Point is a position or displacement in canvas-parent coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dim is a floating point extent (width and height) on the virtual canvas.
type Dim struct {
	W float64
	H float64
}

// TileSource supplies the ordered images a mosaic is built from. Layout only
// needs Len; renderers look images up by index.
type TileSource interface {
	Len() int
	ID(i int) string
	Image(i int) image.Image
}

// Factory constructs a TileSource using an optional configuration map.
type Factory func(cfg map[string]string) (TileSource, error)

var sources = map[string]Factory{}

// Register adds a tile source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available tile source factories.
func Sources() map[string]Factory {
	return sources
}
