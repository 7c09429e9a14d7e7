// Package seed builds initial grids, either by random fill or by stamping
// catalog patterns at fixed anchors.
package seed

import (
	"strings"

	"lifegrid/pkg/core"
	"lifegrid/pkg/patterns"
)

// Mode selects how the initial grid is populated.
type Mode uint8

const (
	Random Mode = iota
	Glider
	LightweightSpaceship
	MiddleweightSpaceship
	LargeSpaceship
	GliderGun
	Eater
	Block
)

var modeNames = map[Mode]string{
	Random:                "random",
	Glider:                "glider",
	LightweightSpaceship:  "lwss",
	MiddleweightSpaceship: "mwss",
	LargeSpaceship:        "hwss",
	GliderGun:             "gun",
	Eater:                 "eater",
	Block:                 "block",
}

var modeAliases = map[string]Mode{
	"lightweight-spaceship":  LightweightSpaceship,
	"middleweight-spaceship": MiddleweightSpaceship,
	"large-spaceship":        LargeSpaceship,
	"glider-gun":             GliderGun,
	"gosper":                 GliderGun,
}

// String returns the short mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode accepts the short names returned by Mode.String plus the long
// spaceship and glider gun names.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	if m, ok := modeAliases[s]; ok {
		return m, nil
	}
	return Random, core.InvalidParameterf("unknown seed mode %q", s)
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Random, Glider, LightweightSpaceship, MiddleweightSpaceship, LargeSpaceship, GliderGun, Eater, Block}
}

// Anchor is the top-left grid coordinate a pattern is stamped at.
type Anchor struct {
	Row, Col int
}

type placement struct {
	name string
	at   Anchor
}

var placements = map[Mode]placement{
	Glider:                {"glider", Anchor{1, 1}},
	LightweightSpaceship:  {"lwss", Anchor{1, 1}},
	MiddleweightSpaceship: {"mwss", Anchor{1, 1}},
	LargeSpaceship:        {"hwss", Anchor{2, 2}},
	GliderGun:             {"gun", Anchor{10, 10}},
	Eater:                 {"eater", Anchor{1, 1}},
	Block:                 {"block", Anchor{1, 1}},
}

// pattern resolves the placement's catalog entry facing o.
func (pl placement) pattern(o patterns.Orientation) (core.Pattern, error) {
	p, ok := patterns.Lookup(pl.name)
	if !ok {
		return core.Pattern{}, core.InvalidParameterf("pattern %q not in catalog %v", pl.name, patterns.Names())
	}
	return patterns.Oriented(p, o), nil
}

// EaterOffset is where the optional eater lands relative to the primary
// pattern's anchor.
var EaterOffset = Anchor{Row: 16, Col: 24}

// AnchorFor returns the stamping anchor used for a pattern mode.
func AnchorFor(m Mode) (Anchor, bool) {
	p, ok := placements[m]
	return p.at, ok
}

// Params carries the mode-specific seeding options.
type Params struct {
	Family      core.Family
	Density     float64
	Orientation patterns.Orientation
	WithEater   bool
	Seed        int64
}

// DefaultParams returns binary-family defaults with a 0.2 random density.
func DefaultParams() Params {
	return Params{Family: core.Binary, Density: 0.2, Orientation: patterns.Left, Seed: 1}
}

// Build constructs the seed grid for mode. Stamping failures return no grid.
func Build(n int, mode Mode, p Params) (*core.Grid, error) {
	if mode == Random {
		if p.WithEater {
			return nil, core.InvalidParameterf("eater compositing needs a pattern mode, got %s", mode)
		}
		return core.NewRandom(n, p.Density, p.Family, core.NewRNG(p.Seed))
	}

	pl, ok := placements[mode]
	if !ok {
		return nil, core.InvalidParameterf("unknown seed mode %d", mode)
	}
	if p.WithEater && mode == Eater {
		return nil, core.InvalidParameterf("eater mode cannot composite a second eater")
	}

	primary, err := pl.pattern(p.Orientation)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGrid(n, p.Family)
	if err != nil {
		return nil, err
	}
	if err := g.Stamp(primary, pl.at.Row, pl.at.Col); err != nil {
		return nil, err
	}
	if p.WithEater {
		eater, err := placements[Eater].pattern(p.Orientation)
		if err != nil {
			return nil, err
		}
		if err := g.Stamp(eater, pl.at.Row+EaterOffset.Row, pl.at.Col+EaterOffset.Col); err != nil {
			return nil, err
		}
	}
	return g, nil
}
