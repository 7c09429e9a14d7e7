package briansbrain

import (
	"lifegrid/pkg/core"
	"lifegrid/pkg/seed"
)

// Config controls the Brian's Brain simulation. The transition table is fixed,
// so only seeding is configurable.
type Config struct {
	Grid seed.Config
}

// DefaultConfig returns a 100×100 grid firing at 0.7 density.
func DefaultConfig() Config {
	return Config{Grid: seed.DefaultConfig(core.ThreeState, 0.7)}
}

// FromMap populates a Config from a string map using the seed.Config keys.
// A rule is rejected since the transition table cannot be changed.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if r, ok := cfg["rule"]; ok {
		return c, core.InvalidParameterf("briansbrain has a fixed rule, got %q", r)
	}
	if err := c.Grid.Apply(cfg); err != nil {
		return c, err
	}
	c.Grid.Family = core.ThreeState
	return c, nil
}
