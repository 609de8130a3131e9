//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type cellToggler interface {
	ToggleCell(row, col uint32)
}

type patternStamper interface {
	SetPattern(name string, startRow, startCol uint32)
}

type clearer interface {
	Clear()
}

// patternKeys maps number keys to the patterns they stamp at the cursor.
var patternKeys = map[ebiten.Key]string{
	ebiten.Key1: "glider",
	ebiten.Key2: "pulsar",
	ebiten.Key3: "gosper_glider_gun",
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay

	toggler cellToggler
	stamper patternStamper
	clearer clearer

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(sim),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	g.toggler, _ = sim.(cellToggler)
	g.stamper, _ = sim.(patternStamper)
	g.clearer, _ = sim.(clearer)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.clearer != nil && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.clearer.Clear()
	}
	if g.stamper != nil {
		for key, name := range patternKeys {
			if inpututil.IsKeyJustPressed(key) {
				if row, col, ok := g.cursorCell(); ok {
					g.stamper.SetPattern(name, row, col)
				}
			}
		}
	}
	if g.toggler != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cursorCell(); ok {
			g.toggler.ToggleCell(row, col)
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// cursorCell converts the mouse position into grid coordinates.
func (g *Game) cursorCell() (row, col uint32, ok bool) {
	x, y := ebiten.CursorPosition()
	size := g.sim.Size()
	cx := x / g.scale
	cy := y / g.scale
	if cx < 0 || cy < 0 || cx >= size.W || cy >= size.H {
		return 0, 0, false
	}
	return uint32(cy), uint32(cx), true
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
