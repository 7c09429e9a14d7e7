//go:build ebiten

package ui

import (
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints run statistics on top of the grid.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay text when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.sim == nil {
		return
	}
	ebitenutil.DebugPrint(screen, Status(o.sim))
}
