package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule  int
	Width int
	Rows  int
	Init  string
	Scale int
	TPS   int
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: 90, Width: 257, Rows: 160, Init: "single", Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVar(&c.Width, "width", c.Width, "initial configuration width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "visible generations in the window")
	fs.StringVar(&c.Init, "init", c.Init, "initial configuration seeder (single, random)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial configuration")
}
