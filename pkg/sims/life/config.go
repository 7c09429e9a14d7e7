package life

import (
	"lifegrid/pkg/core"
	"lifegrid/pkg/seed"
)

// Config controls the Life simulation.
type Config struct {
	Grid seed.Config
	Rule Rule
}

// DefaultConfig returns a 100×100 random grid at 0.2 density under B3/S23.
func DefaultConfig() Config {
	return Config{
		Grid: seed.DefaultConfig(core.Binary, 0.2),
		Rule: DefaultRule(),
	}
}

// FromMap populates a Config from a string map. The "rule" key must parse;
// the remaining keys follow seed.Config.Apply.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if err := c.Grid.Apply(cfg); err != nil {
		return c, err
	}
	c.Grid.Family = core.Binary
	if v, ok := cfg["rule"]; ok && v != "" {
		r, err := ParseRule(v)
		if err != nil {
			return c, err
		}
		c.Rule = r
	}
	return c, nil
}
