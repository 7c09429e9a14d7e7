package core

import (
	"slices"
	"strings"
)

// MinSize is the exclusive lower bound on grid size.
const MinSize = 8

// Grid stores an N×N square of cell states in row-major order. A grid is bound
// to one Family for its lifetime.
type Grid struct {
	n      int
	family Family
	data   []State
}

// NewGrid allocates a grid with every cell Off (or Dead).
func NewGrid(n int, family Family) (*Grid, error) {
	if n <= MinSize {
		return nil, InvalidParameterf("grid size %d must be greater than %d", n, MinSize)
	}
	if !family.Known() {
		return nil, InvalidParameterf("unknown family %s", family)
	}
	return &Grid{n: n, family: family, data: make([]State, n*n)}, nil
}

// NewRandom allocates a grid whose cells are independently live with
// probability density. Live is On for Binary and Firing for ThreeState.
func NewRandom(n int, density float64, family Family, rng *RNG) (*Grid, error) {
	if !(density > 0 && density < 1) {
		return nil, InvalidParameterf("density %v must be in (0,1)", density)
	}
	if rng == nil {
		return nil, InvalidParameterf("random fill needs an RNG")
	}
	g, err := NewGrid(n, family)
	if err != nil {
		return nil, err
	}
	FillDensity(rng.Source(), g.data, family.Live(), density)
	return g, nil
}

// Size returns N.
func (g *Grid) Size() int { return g.n }

// Family returns the automaton family the grid belongs to.
func (g *Grid) Family() Family { return g.family }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []State { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.n + g.n) % g.n
	col = (col%g.n + g.n) % g.n
	return row, col
}

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// At returns the state at (row, col). Coordinates must be in range.
func (g *Grid) At(row, col int) State { return g.data[g.Index(row, col)] }

// Set writes a single cell.
func (g *Grid) Set(row, col int, s State) error {
	if !g.Contains(row, col) {
		return OutOfBoundsf("cell (%d,%d) outside %dx%d grid", row, col, g.n, g.n)
	}
	if !g.family.Valid(s) {
		return InvalidParameterf("state %d not in %s family", s, g.family)
	}
	g.data[g.Index(row, col)] = s
	return nil
}

// Stamp overwrites the rectangle starting at (row, col) with the pattern. The
// rectangle must be fully inside the grid; on failure nothing is written.
func (g *Grid) Stamp(p Pattern, row, col int) error {
	if p.Height() == 0 || p.Width() == 0 {
		return InvalidParameterf("pattern %q is empty", p.Name())
	}
	if row < 0 || col < 0 || row+p.Height() > g.n || col+p.Width() > g.n {
		return OutOfBoundsf("pattern %q (%dx%d) at (%d,%d) exceeds %dx%d grid",
			p.Name(), p.Height(), p.Width(), row, col, g.n, g.n)
	}
	live := g.family.Live()
	for r := 0; r < p.Height(); r++ {
		base := (row+r)*g.n + col
		for c := 0; c < p.Width(); c++ {
			if p.At(r, c) == On {
				g.data[base+c] = live
				continue
			}
			g.data[base+c] = 0
		}
	}
	return nil
}

// Count returns how many cells hold s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.data {
		if c == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, family: g.family, data: slices.Clone(g.data)}
}

// CopyFrom replaces the grid contents with src. Both grids must share size and
// family.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.n != g.n || src.family != g.family {
		return InvalidParameterf("cannot copy %dx%d %s grid into %dx%d %s grid",
			src.n, src.n, src.family, g.n, g.n, g.family)
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same size, family and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.n == o.n && g.family == o.family && slices.Equal(g.data, o.data)
}

// Clear resets every cell to Off (or Dead).
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			b.WriteRune(g.family.Rune(g.data[r*g.n+c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
