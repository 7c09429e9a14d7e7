package life

import "lifegrid/pkg/core"

// Life implements a birth/survival automaton with toroidal wrapping.
type Life struct {
	cfg  Config
	rule Rule
	gen  int
	seed int64
	cur  *core.Grid
	nxt  *core.Grid
}

// New returns a Life simulation seeded from cfg.
func New(cfg Config) (*Life, error) {
	l := &Life{cfg: cfg, rule: cfg.Rule}
	if err := l.Reset(cfg.Grid.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// FromGrid wraps an existing binary grid. The grid is owned by the returned sim;
// a later Reset replaces it with a random fill of the same size.
func FromGrid(g *core.Grid, r Rule) (*Life, error) {
	if g.Family() != core.Binary {
		return nil, core.InvalidParameterf("life needs a binary grid, got %s", g.Family())
	}
	nxt, err := core.NewGrid(g.Size(), core.Binary)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Grid.Size = g.Size()
	cfg.Rule = r
	return &Life{cfg: cfg, rule: r, cur: g, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.Size(), H: l.cur.Size()} }

// Generation returns how many steps have run since the last reset.
func (l *Life) Generation() int { return l.gen }

// Rule returns the active rule.
func (l *Life) Rule() Rule { return l.rule }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.State { return l.cur.Cells() }

// Reset rebuilds the seed grid using the provided seed.
func (l *Life) Reset(s int64) error {
	g, err := l.cfg.Grid.Build(s)
	if err != nil {
		return err
	}
	// Reuse both buffers when the seed grid has the same shape.
	if l.cur != nil && l.cur.CopyFrom(g) == nil {
		l.nxt.Clear()
	} else {
		nxt, err := core.NewGrid(g.Size(), core.Binary)
		if err != nil {
			return err
		}
		l.cur, l.nxt = g, nxt
	}
	l.gen, l.seed = 0, s
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Advance(l.nxt, l.cur, l.rule)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Next returns the generation after src as a new grid.
func Next(src *core.Grid, r Rule) *core.Grid {
	dst := src.Clone()
	Advance(dst, src, r)
	return dst
}

// Advance writes the generation after src into dst. dst must be a distinct
// grid of the same size; src is only read.
func Advance(dst, src *core.Grid, r Rule) {
	n := src.Size()
	cur, nxt := src.Cells(), dst.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			total := neighbors(cur, n, row, col)
			idx := row*n + col
			if cur[idx] == core.On {
				if r.Survives(total) {
					nxt[idx] = core.On
				} else {
					nxt[idx] = core.Off
				}
				continue
			}
			if r.Born(total) {
				nxt[idx] = core.On
			} else {
				nxt[idx] = core.Off
			}
		}
	}
}

// neighbors counts On cells among the 8 toroidal neighbors of (row, col).
func neighbors(cells []core.State, n, row, col int) int {
	total := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + n) % n
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + n) % n
			if cells[r*n+c] == core.On {
				total++
			}
		}
	}
	return total
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}

var _ core.Sim = (*Life)(nil)
