package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults. Width and
// height of zero mean "use the simulation's default size".
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 8, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 = sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 = sim default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to stamp on a cleared grid at startup")
}

// SimConfig converts the dimension flags into the registry's map form.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{}
	if c.Width > 0 {
		cfg["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		cfg["h"] = strconv.Itoa(c.Height)
	}
	return cfg
}
