package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/core"
	"mosaic/internal/grid"
	"mosaic/internal/layout"
	"mosaic/internal/pan"
	"mosaic/internal/tiles"
)

func smallConfig() Config {
	return Config{
		Grid:   grid.DefaultOptions(),
		Layout: layout.Config{TileSize: 10, Scale: 1, Padding: 2, BlockCount: 4, BlockColumns: 2},
	}
}

var viewport = core.Size{W: 100, H: 80}

func TestBuildPipeline(t *testing.T) {
	s := Build(tiles.NewPlaceholder(17, 10, 1), smallConfig(), viewport)
	res := s.Canvas.Resolution
	assert.Equal(t, 17, res.Requested)
	assert.Equal(t, 20, res.Count)
	assert.Equal(t, 5, res.Columns)
	assert.False(t, s.Blank())
	assert.Equal(t, s.Canvas.Offset, s.Translation())
	assert.Equal(t, pan.Idle, s.Pan.State())
	assert.Equal(t, pan.NewBounds(s.Canvas.Size, viewport), s.Pan.Bounds())
}

func TestBuildBlank(t *testing.T) {
	for _, src := range []core.TileSource{nil, tiles.NewSet(nil, nil)} {
		s := Build(src, smallConfig(), viewport)
		assert.True(t, s.Blank())
		assert.Equal(t, 16, s.Canvas.Resolution.Count)
		assert.Equal(t, 4, s.Canvas.Resolution.Columns)
		require.Equal(t, 1, s.Source.Len())
		assert.Equal(t, "blank", s.Source.ID(0))
	}
}

func TestTeardownDetaches(t *testing.T) {
	s := Build(tiles.NewPlaceholder(4, 10, 1), smallConfig(), viewport)
	s.Teardown()
	assert.True(t, s.Pan.Detached())
	s.Teardown()
}

func newDirector(t *testing.T) *Director {
	t.Helper()
	return NewDirector(tiles.NewPlaceholder(17, 10, 1), smallConfig(), viewport)
}

func TestDirectorClickSelectsTile(t *testing.T) {
	d := newDirector(t)
	var got []Selection
	d.OnSelect(func(s Selection) { got = append(got, s) })

	d.Press(core.Pt(4, 8))
	d.Release(core.Pt(4, 8))

	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].Tile)
	assert.Equal(t, 6, got[0].Source)
	assert.Equal(t, "placeholder-6", got[0].ID)
	assert.Equal(t, d.Stage().ID, got[0].Stage)
	assert.Equal(t, d.Stage().Canvas.Offset, d.Stage().Translation(), "a tap does not pan")
}

func TestDirectorDragSuppressesClick(t *testing.T) {
	d := newDirector(t)
	fired := false
	d.OnSelect(func(Selection) { fired = true })

	d.Press(core.Pt(4, 8))
	d.Move(core.Pt(6, 8))
	d.Release(core.Pt(6, 8))

	assert.False(t, fired)
	assert.Equal(t, d.Stage().Canvas.Offset.Add(core.Pt(2, 0)), d.Stage().Translation())
}

func TestDirectorIdleMoveKeepsClick(t *testing.T) {
	d := newDirector(t)
	fired := 0
	d.OnSelect(func(Selection) { fired++ })

	d.Move(core.Pt(50, 50))
	d.Press(core.Pt(4, 8))
	d.Release(core.Pt(4, 8))
	assert.Equal(t, 1, fired)
}

func TestDirectorLeaveCancelsClick(t *testing.T) {
	d := newDirector(t)
	fired := false
	d.OnSelect(func(Selection) { fired = true })

	d.Press(core.Pt(4, 8))
	d.Leave()
	d.Release(core.Pt(4, 8))
	assert.False(t, fired)
	assert.Equal(t, pan.Idle, d.Stage().Pan.State())
}

func TestDirectorBlankStageHasNoClicks(t *testing.T) {
	d := NewDirector(nil, smallConfig(), viewport)
	fired := false
	d.OnSelect(func(Selection) { fired = true })
	d.Press(core.Pt(4, 8))
	d.Release(core.Pt(4, 8))
	assert.False(t, fired)
}

func TestDirectorRebuildDetachesOldStage(t *testing.T) {
	d := newDirector(t)
	old := d.Stage()
	var ready *Stage
	d.OnStageReady(func(s *Stage) { ready = s })

	d.Press(core.Pt(0, 0))
	d.SetSource(tiles.NewPlaceholder(25, 10, 2))

	require.NotSame(t, old, d.Stage())
	assert.Same(t, d.Stage(), ready)
	assert.True(t, old.Pan.Detached())
	assert.NotEqual(t, old.ID, d.Stage().ID)
	assert.Equal(t, 5, d.Stage().Canvas.Resolution.Columns)

	before := old.Translation()
	d.Move(core.Pt(30, 30))
	assert.Equal(t, before, old.Translation(), "stale stage never moves")
	assert.Equal(t, d.Stage().Canvas.Offset, d.Stage().Translation(), "press before the rebuild does not carry over")
}

func TestDirectorResize(t *testing.T) {
	d := newDirector(t)
	d.Resize(core.Size{W: 60, H: 40})
	assert.Equal(t, core.Size{W: 60, H: 40}, d.Viewport())
	assert.Equal(t, pan.NewBounds(d.Stage().Canvas.Size, core.Size{W: 60, H: 40}), d.Stage().Pan.Bounds())

	d.Rebuild()
	assert.Equal(t, pan.NewBounds(d.Stage().Canvas.Size, core.Size{W: 60, H: 40}), d.Stage().Pan.Bounds())
}

func TestDirectorParameters(t *testing.T) {
	d := newDirector(t)
	snap := d.Parameters()

	p, ok := snap.Lookup("columns")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)
	p, ok = snap.Lookup("padded")
	require.True(t, ok)
	assert.Equal(t, "3", p.Value)

	for _, ctrl := range d.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no value", ctrl.Key)
	}
}

func TestDirectorSetParameters(t *testing.T) {
	d := newDirector(t)
	old := d.Stage()

	require.True(t, d.SetIntParameter("min_columns", 3))
	assert.True(t, old.Pan.Detached())
	assert.Equal(t, 3, d.Config().Grid.MinColumns)
	assert.Equal(t, 18, d.Stage().Canvas.Resolution.Count)

	require.True(t, d.SetFloatParameter("padding", 0))
	assert.Equal(t, 0.0, d.Stage().Canvas.Config.Padding)

	require.True(t, d.SetIntParameter("blocks", 6))
	assert.Len(t, d.Stage().Canvas.Blocks, 6)

	assert.False(t, d.SetIntParameter("min_columns", 0))
	assert.False(t, d.SetIntParameter("rows", 2))
	assert.False(t, d.SetFloatParameter("scale", -1))
	assert.False(t, d.SetFloatParameter("zoom", 1))
}
