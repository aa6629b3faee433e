package app

import (
	"flag"
	"fmt"
	"strings"

	"regiongrow/internal/core"
)

// Config represents the command-line parameters for the preview.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Rate     int
	Seed     int64
	HUDWidth int
	Paused   bool

	// SeedSet records whether -seed was given on the command line. Without
	// it the sim keeps the seed from its own config, including -set seed=N.
	SeedSet bool

	// Overrides are passed to the sim factory as key=value pairs.
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "regions", Scale: 4, TPS: 60, Rate: 30, Seed: 1337, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "generator to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generator steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generator reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused; press N to step")
	fs.Var(&c.Overrides, "set", "generator parameter in key=value form (repeatable)")
}

// Parse parses args into fs and records which flags were set explicitly.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.SeedSet = true
		}
	})
	return nil
}

// NewSim builds the configured sim from the registry. The sim is reset to
// -seed only when that flag was given.
func NewSim(c *Config) (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	sim := factory(c.Overrides.Map())
	if c.SeedSet {
		sim.Reset(c.Seed)
	}
	return sim, nil
}

// StartSeed returns the seed sim is running with, falling back to -seed for
// sims that do not report one.
func StartSeed(sim core.Sim, c *Config) int64 {
	if s, ok := sim.(core.Seeder); ok {
		return s.Seed()
	}
	return c.Seed
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}
