package tiles

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestClipShape(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	out := Clip(uniform(120, 80, red), 40)
	require.Equal(t, image.Rect(0, 0, 40, 40), out.Bounds())

	_, _, _, a := out.At(0, 0).RGBA()
	assert.Zero(t, a, "corner is masked")

	r, g, b, a := out.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0, g, 0x200)
	assert.InDelta(t, 0, b, 0x200)
}

func TestSquareCrop(t *testing.T) {
	assert.Equal(t, image.Rect(20, 0, 100, 80), squareCrop(image.Rect(0, 0, 120, 80)))
	assert.Equal(t, image.Rect(5, 15, 55, 65), squareCrop(image.Rect(5, 5, 55, 75)))
}

func TestSetBounds(t *testing.T) {
	s := NewSet([]string{"a", "b", "c"}, []image.Image{uniform(1, 1, color.White), uniform(1, 1, color.Black)})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "b", s.ID(1))
	assert.Equal(t, "", s.ID(2))
	assert.Nil(t, s.Image(-1))

	var nilSet *Set
	assert.Zero(t, nilSet.Len())
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := NewPlaceholder(5, 16, 7)
	b := NewPlaceholder(5, 16, 7)
	require.Equal(t, 5, a.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Image(i).At(8, 8), b.Image(i).At(8, 8))
		assert.Equal(t, a.ID(i), b.ID(i))
	}
	assert.Equal(t, "placeholder-4", a.ID(4))
}

func TestBlank(t *testing.T) {
	s := Blank(16)
	require.Equal(t, 1, s.Len())
	r, g, b, _ := s.Image(0).At(8, 8).RGBA()
	assert.Equal(t, uint32(BlankColor.R)*0x101, r)
	assert.Equal(t, uint32(BlankColor.G)*0x101, g)
	assert.Equal(t, uint32(BlankColor.B)*0x101, b)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), uniform(30, 20, color.RGBA{G: 255, A: 255}))
	writePNG(t, filepath.Join(dir, "a.png"), uniform(10, 10, color.RGBA{B: 255, A: 255}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0o755))

	set, err := LoadDir(context.Background(), dir, 24)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "a", set.ID(0))
	assert.Equal(t, "b", set.ID(1))
	assert.Equal(t, image.Rect(0, 0, 24, 24), set.Image(1).Bounds())
}

func TestLoadDirEmpty(t *testing.T) {
	set, err := LoadDir(context.Background(), t.TempDir(), 24)
	require.NoError(t, err)
	assert.Zero(t, set.Len())
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "missing"), 24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), uniform(4, 4, color.White))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadDir(ctx, dir, 8)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	_, err := Open("carousel", nil)
	assert.ErrorIs(t, err, ErrUnknownSource)

	src, err := Open("placeholder", map[string]string{"count": "3", "size": "8"})
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())

	_, err = Open("dir", map[string]string{})
	assert.Error(t, err)

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "x.png"), uniform(4, 4, color.White))
	src, err = Open("dir", map[string]string{"dir": dir, "size": "8"})
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())
}
