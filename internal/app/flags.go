package app

import (
	"flag"
	"strconv"
	"time"

	"lifegrid/internal/platform/config"
)

// Config represents the command-line parameters shared by the viewer and the
// headless runner. Environment variables provide the defaults that flags
// override.
type Config struct {
	Sim   string `env:"LIFEGRID_SIM" envDefault:"life"`
	Scale int    `env:"LIFEGRID_SCALE" envDefault:"6"`
	TPS   int    `env:"LIFEGRID_TPS" envDefault:"20"`
	Seed  int64  `env:"LIFEGRID_SEED" envDefault:"42"`

	Size        int     `env:"LIFEGRID_N" envDefault:"100"`
	Mode        string  `env:"LIFEGRID_MODE" envDefault:"random"`
	Density     float64 `env:"LIFEGRID_DENSITY"`
	Orientation string  `env:"LIFEGRID_ORIENTATION" envDefault:"left"`
	Eater       bool    `env:"LIFEGRID_EATER"`
	Rule        string  `env:"LIFEGRID_RULE"`

	Generations int           `env:"LIFEGRID_GENERATIONS" envDefault:"10"`
	Interval    time.Duration `env:"LIFEGRID_INTERVAL" envDefault:"50ms"`
	Quiet       bool          `env:"LIFEGRID_QUIET"`
}

// NewConfig returns a Config populated from the environment and defaults.
func NewConfig() (*Config, error) {
	c := &Config{}
	if err := config.ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the viewer and seeding options to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, briansbrain)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second in the viewer")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 = random)")
	c.BindSeeding(fs)
}

// BindSeeding attaches only the grid seeding options.
func (c *Config) BindSeeding(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "n", c.Size, "grid size N (must be greater than 8)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "seed mode (random, glider, lwss, mwss, hwss, gun, eater, block)")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density in (0,1); 0 keeps the sim default")
	fs.StringVar(&c.Orientation, "orientation", c.Orientation, "pattern orientation (left, right)")
	fs.BoolVar(&c.Eater, "eater", c.Eater, "stamp an eater next to the seed pattern")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule for life, e.g. B3/S23")
}

// BindRun attaches the headless run options.
func (c *Config) BindRun(fs *flag.FlagSet) {
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to run")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "print only the status line per generation")
}

// SimConfig converts the seeding options into the key/value form consumed by
// sim factories.
func (c *Config) SimConfig(seed int64) map[string]string {
	m := map[string]string{
		"n":           strconv.Itoa(c.Size),
		"mode":        c.Mode,
		"orientation": c.Orientation,
		"eater":       strconv.FormatBool(c.Eater),
		"seed":        strconv.FormatInt(seed, 10),
	}
	if c.Density > 0 {
		m["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}
