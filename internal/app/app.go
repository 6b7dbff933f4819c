//go:build ebiten

package app

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mosaic/internal/core"
	"mosaic/internal/render"
	"mosaic/internal/stage"
	"mosaic/internal/ui"
)

// Game adapts a stage.Director to the ebiten.Game interface.
type Game struct {
	director *stage.Director
	painter  *render.TilePainter
	overlay  *ui.Overlay
	hud      *ui.HUD

	pointer  pointerTracker
	touchIDs []ebiten.TouchID
	touching bool
	touchPos core.Point
	viewport core.Size
}

// New constructs a Game driving director. hudWidth 0 hides the HUD.
func New(director *stage.Director, hudWidth int) *Game {
	g := &Game{
		director: director,
		painter:  render.NewTilePainter(director.Stage().Source),
		overlay:  ui.NewOverlay(),
		viewport: director.Viewport(),
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(director, hudWidth)
	}
	if area := canvasArea(g.viewport, g.hud.Width()); area != director.Viewport() {
		// centre the first stage in the area left of the HUD
		director.Resize(area)
		director.Rebuild()
	}
	director.OnStageReady(g.stageReady)
	director.OnSelect(g.selected)
	return g
}

func (g *Game) stageReady(s *stage.Stage) {
	if g.painter.Source() != s.Source {
		g.painter.Dispose()
		g.painter = render.NewTilePainter(s.Source)
	}
}

func (g *Game) selected(sel stage.Selection) {
	core.Logger().Info("tile selected",
		slog.String("stage", sel.Stage.String()),
		slog.Int("tile", sel.Tile),
		slog.Int("source", sel.Source),
		slog.String("id", sel.ID),
	)
	g.hud.SetStatus("selected " + sel.ID)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.director.Rebuild()
	}

	g.overlay.Update()
	if g.hud.Update(g.viewport.W - g.hud.Width()) {
		return nil
	}
	g.pointer.Feed(g.sample(), g.director)
	return nil
}

// sample reads the first active touch, falling back to the mouse.
func (g *Game) sample() PointerSample {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.touching = true
		g.touchPos = core.Pt(float64(x), float64(y))
		return PointerSample{Pos: g.touchPos, Down: true, Inside: inside(x, y, g.viewport, g.hud.Width())}
	}
	if g.touching {
		// the touch lifted; release where it was last seen
		g.touching = false
		return PointerSample{Pos: g.touchPos, Inside: true}
	}
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pos:    core.Pt(float64(x), float64(y)),
		Down:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Inside: inside(x, y, g.viewport, g.hud.Width()),
	}
}

// Draw renders the mosaic, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.director.Stage()
	g.painter.Draw(screen, s.Canvas, s.Translation())
	g.overlay.Draw(screen, s.Canvas, s.Pan)
	g.hud.Draw(screen, g.viewport.W-g.hud.Width())
}

// Layout tracks the window size; a change recomputes the pan bounds for the
// area left of the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.viewport {
		g.viewport = size
		g.director.Resize(canvasArea(size, g.hud.Width()))
	}
	return outsideWidth, outsideHeight
}
