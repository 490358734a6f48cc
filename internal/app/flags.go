package app

import (
	"github.com/spf13/pflag"

	"falling-sand/internal/config"
)

// Config represents the front-end command-line parameters.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
}

// Merge fills fields from the runtime section of a config file unless the
// matching flag was set explicitly.
func (c *Config) Merge(rt config.RuntimeConfig, fs *pflag.FlagSet) {
	if rt.Scale > 0 && !fs.Changed("scale") {
		c.Scale = rt.Scale
	}
	if rt.TPS > 0 && !fs.Changed("tps") {
		c.TPS = rt.TPS
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}
