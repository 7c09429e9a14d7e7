package core

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewGridRejectsSmallSizes(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 8} {
		if _, err := NewGrid(n, Binary); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("NewGrid(%d) err=%v, want ErrInvalidParameter", n, err)
		}
	}
	g, err := NewGrid(9, Binary)
	if err != nil {
		t.Fatalf("NewGrid(9): %v", err)
	}
	if g.Size() != 9 || len(g.Cells()) != 81 {
		t.Fatalf("expected 9x9 grid, got size %d with %d cells", g.Size(), len(g.Cells()))
	}
	if g.Count(Off) != 81 {
		t.Fatalf("new grid should be all off, got %d off cells", g.Count(Off))
	}
	if _, err := NewGrid(10, Family(7)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("unknown family err=%v, want ErrInvalidParameter", err)
	}
}

func TestNewRandomDensityBounds(t *testing.T) {
	for _, d := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		if _, err := NewRandom(20, d, Binary, NewRNG(1)); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("density %v err=%v, want ErrInvalidParameter", d, err)
		}
	}
	if _, err := NewRandom(8, 0.5, Binary, NewRNG(1)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("size 8 err=%v, want ErrInvalidParameter", err)
	}
	if _, err := NewRandom(20, 0.5, Binary, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("nil rng err=%v, want ErrInvalidParameter", err)
	}
}

func TestNewRandomMatchesDensity(t *testing.T) {
	const n = 200
	for _, tc := range []struct {
		family  Family
		density float64
	}{
		{Binary, 0.2},
		{Binary, 0.5},
		{ThreeState, 0.7},
	} {
		g, err := NewRandom(n, tc.density, tc.family, NewRNG(42))
		if err != nil {
			t.Fatalf("NewRandom: %v", err)
		}
		if len(g.Cells()) != n*n {
			t.Fatalf("expected %d cells, got %d", n*n, len(g.Cells()))
		}
		live := g.Count(tc.family.Live())
		dead := g.Count(0)
		if live+dead != n*n {
			t.Fatalf("%s grid holds states other than live/dead", tc.family)
		}
		frac := float64(live) / float64(n*n)
		if math.Abs(frac-tc.density) > 0.02 {
			t.Fatalf("%s density %v produced live fraction %v", tc.family, tc.density, frac)
		}
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a, _ := NewRandom(32, 0.3, Binary, NewRNG(7))
	b, _ := NewRandom(32, 0.3, Binary, NewRNG(7))
	c, _ := NewRandom(32, 0.3, Binary, NewRNG(8))
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same grid")
	}
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestWrap(t *testing.T) {
	g, _ := NewGrid(10, Binary)
	cases := []struct{ r, c, wr, wc int }{
		{0, 0, 0, 0},
		{-1, -1, 9, 9},
		{10, 10, 0, 0},
		{-11, 23, 9, 3},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wr, tc.wc)
		}
	}
}

func TestSetValidates(t *testing.T) {
	g, _ := NewGrid(10, Binary)
	if err := g.Set(10, 0, On); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set outside grid err=%v, want ErrOutOfBounds", err)
	}
	if err := g.Set(0, 0, Refractory); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Set refractory on binary grid err=%v, want ErrInvalidParameter", err)
	}
	if err := g.Set(3, 4, On); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if g.At(3, 4) != On {
		t.Fatal("expected (3,4) to be on")
	}
}

func TestStampWritesRectangle(t *testing.T) {
	g, _ := NewGrid(10, Binary)
	p := MustPattern("t",
		"#.",
		".#",
		"##",
	)
	if err := g.Stamp(p, 7, 8); err != nil {
		t.Fatalf("Stamp at the far corner: %v", err)
	}
	want := map[[2]int]bool{{7, 8}: true, {8, 9}: true, {9, 8}: true, {9, 9}: true}
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if got := g.At(r, c) == On; got != want[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) on=%v, want %v", r, c, got, want[[2]int{r, c}])
			}
		}
	}

	// Off cells in the pattern overwrite whatever was there.
	g2, _ := NewGrid(10, Binary)
	for i := range g2.Cells() {
		g2.Cells()[i] = On
	}
	if err := g2.Stamp(p, 0, 0); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if g2.At(0, 1) != Off || g2.At(1, 0) != Off {
		t.Fatal("stamp should clear cells that are off in the pattern")
	}
}

func TestStampOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	g, _ := NewRandom(12, 0.4, Binary, NewRNG(3))
	before := slices.Clone(g.Cells())
	p := MustPattern("bar", "###", "###")

	for _, at := range [][2]int{{11, 0}, {0, 10}, {-1, 0}, {0, -1}, {12, 12}} {
		err := g.Stamp(p, at[0], at[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Stamp at %v err=%v, want ErrOutOfBounds", at, err)
		}
		if !slices.Equal(before, g.Cells()) {
			t.Fatalf("failed stamp at %v mutated the grid", at)
		}
	}
}

func TestStampMapsOnToFiring(t *testing.T) {
	g, _ := NewGrid(10, ThreeState)
	if err := g.Stamp(MustPattern("dot", "#."), 2, 2); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if g.At(2, 2) != Firing || g.At(2, 3) != Dead {
		t.Fatalf("expected firing/dead, got %d/%d", g.At(2, 2), g.At(2, 3))
	}
}

func TestCloneAndCopyFrom(t *testing.T) {
	g, _ := NewRandom(10, 0.5, Binary, NewRNG(9))
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal source")
	}
	c.Cells()[0] ^= 1
	if c.Equal(g) {
		t.Fatal("clone must not share storage with source")
	}

	dst, _ := NewGrid(10, Binary)
	if err := dst.CopyFrom(g); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !dst.Equal(g) {
		t.Fatal("CopyFrom should copy every cell")
	}
	dst.Clear()
	if dst.Count(Off) != 100 {
		t.Fatal("Clear should switch every cell off")
	}
	other, _ := NewGrid(10, ThreeState)
	if err := other.CopyFrom(g); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("CopyFrom across families err=%v, want ErrInvalidParameter", err)
	}
}

func TestGridString(t *testing.T) {
	g, _ := NewGrid(9, ThreeState)
	_ = g.Set(0, 0, Firing)
	_ = g.Set(0, 1, Refractory)
	lines := g.String()
	if lines[:9] != "#o......." {
		t.Fatalf("unexpected first row %q", lines[:9])
	}
	if len(lines) != 9*10 {
		t.Fatalf("expected 90 bytes, got %d", len(lines))
	}
}
