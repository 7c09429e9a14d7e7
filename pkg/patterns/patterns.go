// Package patterns holds the catalog of named structures that can be stamped
// into a grid: still lifes, spaceships, the Gosper glider gun and an eater.
//
// Entries are immutable. Oriented entries are drawn facing left and mirrored
// on demand for the right-facing orientation.
package patterns

import (
	"sort"
	"strings"

	"lifegrid/pkg/core"
)

// Orientation selects the facing of an oriented pattern.
type Orientation uint8

const (
	// Left is the catalog's native orientation.
	Left Orientation = iota
	// Right mirrors the pattern's columns.
	Right
)

// String returns "left" or "right".
func (o Orientation) String() string {
	if o == Right {
		return "right"
	}
	return "left"
}

// ParseOrientation accepts "left", "right" (any case) or an empty string.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, core.InvalidParameterf("orientation %q must be left or right", s)
	}
}

var (
	Block = core.MustPattern("block",
		"##",
		"##",
	)

	Glider = core.MustPattern("glider",
		"..#",
		"#.#",
		".##",
	)

	LightweightSpaceship = core.MustPattern("lwss",
		".#..#",
		"#....",
		"#...#",
		"####.",
	)

	MiddleweightSpaceship = core.MustPattern("mwss",
		"..#...",
		"#...#.",
		".....#",
		"#....#",
		".#####",
	)

	LargeSpaceship = core.MustPattern("hwss",
		".######",
		"#.....#",
		"......#",
		"#....#.",
		"..##...",
	)

	Eater = core.MustPattern("eater",
		"##..",
		"#.#.",
		"..#.",
		"..##",
	)

	GliderGun = core.MustPattern("gun",
		"......................................",
		".........................#............",
		".......................#.#............",
		".............##......##............##.",
		"............#...#....##............##.",
		".##........#.....#...##...............",
		".##........#...#.##....#.#............",
		"...........#.....#.......#............",
		"............#...#.....................",
		".............##.......................",
		"......................................",
	)
)

var catalog = map[string]core.Pattern{
	Block.Name():                 Block,
	Glider.Name():                Glider,
	LightweightSpaceship.Name():  LightweightSpaceship,
	MiddleweightSpaceship.Name(): MiddleweightSpaceship,
	LargeSpaceship.Name():        LargeSpaceship,
	Eater.Name():                 Eater,
	GliderGun.Name():             GliderGun,
}

// Lookup returns the catalog entry registered under name.
func Lookup(name string) (core.Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Orientable reports whether the pattern accepts an orientation. Block and the
// glider gun do not.
func Orientable(p core.Pattern) bool {
	switch p.Name() {
	case Block.Name(), GliderGun.Name():
		return false
	}
	return true
}

// Oriented returns p facing o. Non-orientable patterns come back unchanged.
func Oriented(p core.Pattern, o Orientation) core.Pattern {
	if o == Right && Orientable(p) {
		return p.FlipHorizontal()
	}
	return p
}
