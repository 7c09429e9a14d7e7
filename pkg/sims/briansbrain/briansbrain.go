package briansbrain

import (
	"image/color"

	"lifegrid/pkg/core"
)

var palette = []color.RGBA{
	core.Dead:       {A: 255},
	core.Firing:     {R: 255, G: 255, B: 255, A: 255},
	core.Refractory: {R: 255, A: 255},
}

// Brain implements Brian's Brain on a grid with clipped edges.
type Brain struct {
	cfg  Config
	gen  int
	seed int64
	cur  *core.Grid
	nxt  *core.Grid
}

// New creates a Brain simulation seeded from cfg.
func New(cfg Config) (*Brain, error) {
	b := &Brain{cfg: cfg}
	if err := b.Reset(cfg.Grid.Seed); err != nil {
		return nil, err
	}
	return b, nil
}

// FromGrid wraps an existing three-state grid. The grid is owned by the
// returned sim; a later Reset replaces it with a random fill of the same size.
func FromGrid(g *core.Grid) (*Brain, error) {
	if g.Family() != core.ThreeState {
		return nil, core.InvalidParameterf("briansbrain needs a three-state grid, got %s", g.Family())
	}
	nxt, err := core.NewGrid(g.Size(), core.ThreeState)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Grid.Size = g.Size()
	return &Brain{cfg: cfg, cur: g, nxt: nxt}, nil
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cur.Size(), H: b.cur.Size()} }

// Generation returns how many steps have run since the last reset.
func (b *Brain) Generation() int { return b.gen }

// Grid exposes the current generation.
func (b *Brain) Grid() *core.Grid { return b.cur }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []core.State { return b.cur.Cells() }

// Palette maps each state to its display color.
func (b *Brain) Palette() []color.RGBA { return palette }

// Reset rebuilds the seed grid using the provided seed.
func (b *Brain) Reset(s int64) error {
	g, err := b.cfg.Grid.Build(s)
	if err != nil {
		return err
	}
	// Reuse both buffers when the seed grid has the same shape.
	if b.cur != nil && b.cur.CopyFrom(g) == nil {
		b.nxt.Clear()
	} else {
		nxt, err := core.NewGrid(g.Size(), core.ThreeState)
		if err != nil {
			return err
		}
		b.cur, b.nxt = g, nxt
	}
	b.gen, b.seed = 0, s
	return nil
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	Advance(b.nxt, b.cur)
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

// Next returns the generation after src as a new grid.
func Next(src *core.Grid) *core.Grid {
	dst := src.Clone()
	Advance(dst, src)
	return dst
}

// Advance writes the generation after src into dst. dst must be a distinct
// grid of the same size; src is only read.
func Advance(dst, src *core.Grid) {
	n := src.Size()
	cur, nxt := src.Cells(), dst.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			switch cur[idx] {
			case core.Firing:
				nxt[idx] = core.Refractory
			case core.Refractory:
				nxt[idx] = core.Dead
			default:
				if firingInWindow(cur, n, row, col) == 2 {
					nxt[idx] = core.Firing
				} else {
					nxt[idx] = core.Dead
				}
			}
		}
	}
}

// firingInWindow counts Firing cells in the 3×3 window centred on (row, col)
// after clipping it to the grid. The centre cell is part of the window.
func firingInWindow(cells []core.State, n, row, col int) int {
	r0, r1 := max(0, row-1), min(n, row+2)
	c0, c1 := max(0, col-1), min(n, col+2)
	total := 0
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			if cells[r*n+c] == core.Firing {
				total++
			}
		}
	}
	return total
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
