package seed

import (
	"strconv"

	"lifegrid/pkg/core"
	"lifegrid/pkg/patterns"
)

// DefaultSize matches the grid edge used when none is configured.
const DefaultSize = 100

// Config bundles a grid size, mode and params: everything Build needs.
type Config struct {
	Size int
	Mode Mode
	Params
}

// DefaultConfig returns a random-mode config for family with the given fill
// density.
func DefaultConfig(family core.Family, density float64) Config {
	p := DefaultParams()
	p.Family = family
	p.Density = density
	return Config{Size: DefaultSize, Mode: Random, Params: p}
}

// Build runs Build with the stored settings and an explicit seed.
func (c Config) Build(seed int64) (*core.Grid, error) {
	p := c.Params
	p.Seed = seed
	return Build(c.Size, c.Mode, p)
}

// Apply overlays flag-style key/value pairs. Numeric values that fail to parse
// or fall outside their range are ignored; unknown modes and orientations are
// reported.
func (c *Config) Apply(cfg map[string]string) error {
	if cfg == nil {
		return nil
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > core.MinSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["eater"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.WithEater = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		m, err := ParseMode(v)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if v, ok := cfg["orientation"]; ok {
		o, err := patterns.ParseOrientation(v)
		if err != nil {
			return err
		}
		c.Orientation = o
	}
	return nil
}
