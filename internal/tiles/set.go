// Package tiles provides tile sources: images loaded from a directory and
// generated placeholders, all clipped to rounded squares of a fixed size.
package tiles

import (
	"errors"
	"image"
)

// ErrUnknownSource is returned by Open for an unregistered source name.
var ErrUnknownSource = errors.New("tiles: unknown source")

// Set is an immutable, ordered collection of tile images.
type Set struct {
	ids    []string
	images []image.Image
}

// NewSet pairs ids with images. Extra entries on either side are dropped.
func NewSet(ids []string, images []image.Image) *Set {
	n := min(len(ids), len(images))
	return &Set{ids: append([]string(nil), ids[:n]...), images: append([]image.Image(nil), images[:n]...)}
}

// Len returns the number of tiles.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.images)
}

// ID returns the identifier of tile i, or "" when out of range.
func (s *Set) ID(i int) string {
	if i < 0 || i >= s.Len() {
		return ""
	}
	return s.ids[i]
}

// Image returns tile i, or nil when out of range.
func (s *Set) Image(i int) image.Image {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.images[i]
}
