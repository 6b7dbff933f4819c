package core

import (
	"image/color"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Pastel returns an opaque colour with every channel in [96, 224).
func (r *RNG) Pastel() color.RGBA {
	return color.RGBA{
		R: uint8(96 + r.r.IntN(128)),
		G: uint8(96 + r.r.IntN(128)),
		B: uint8(96 + r.r.IntN(128)),
		A: 255,
	}
}

