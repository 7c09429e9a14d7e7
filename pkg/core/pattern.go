package core

import "slices"

// Pattern is an immutable rectangular stamp of On/Off cells.
type Pattern struct {
	name  string
	w, h  int
	cells []State
}

// NewPattern builds a pattern from row strings where '#' or 'O' marks an On
// cell and any other rune marks Off. All rows must share the same width.
func NewPattern(name string, rows ...string) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, InvalidParameterf("pattern %q is empty", name)
	}
	w := len(rows[0])
	cells := make([]State, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return Pattern{}, InvalidParameterf("pattern %q row %d has width %d, want %d", name, i, len(row), w)
		}
		for _, c := range row {
			if c == '#' || c == 'O' {
				cells = append(cells, On)
				continue
			}
			cells = append(cells, Off)
		}
	}
	return Pattern{name: name, w: w, h: len(rows), cells: cells}, nil
}

// MustPattern is NewPattern for package-level catalog entries.
func MustPattern(name string, rows ...string) Pattern {
	p, err := NewPattern(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the catalog name of the pattern.
func (p Pattern) Name() string { return p.name }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.h }

// Width returns the number of columns.
func (p Pattern) Width() int { return p.w }

// At returns the cell at (row, col) in pattern coordinates.
func (p Pattern) At(row, col int) State { return p.cells[row*p.w+col] }

// FlipHorizontal returns a copy with the column order reversed.
func (p Pattern) FlipHorizontal() Pattern {
	out := Pattern{name: p.name, w: p.w, h: p.h, cells: make([]State, len(p.cells))}
	for r := 0; r < p.h; r++ {
		for c := 0; c < p.w; c++ {
			out.cells[r*p.w+c] = p.cells[r*p.w+(p.w-1-c)]
		}
	}
	return out
}

// Equal reports whether both patterns have the same geometry and cells.
func (p Pattern) Equal(o Pattern) bool {
	return p.w == o.w && p.h == o.h && slices.Equal(p.cells, o.cells)
}

// Population returns the number of On cells.
func (p Pattern) Population() int {
	n := 0
	for _, c := range p.cells {
		if c == On {
			n++
		}
	}
	return n
}
