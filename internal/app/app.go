//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	internalcore "lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	stepper *internalcore.FixedStep
	overlay *ui.Overlay
	palette []color.RGBA

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game advancing sim tps generations per second.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		stepper:  internalcore.NewFixedStepTPS(tps),
		overlay:  ui.NewOverlay(sim),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.sim.Reset(seed); err != nil {
		log.Printf("reset %s: %v", g.sim.Name(), err)
		return
	}
	g.seed = seed
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

	g.overlay.Update()

	// Tick every frame so a pause does not bank steps.
	due := g.stepper.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
