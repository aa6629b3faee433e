package regions

import (
	"strconv"

	"regiongrow/internal/session"
)

// DefaultConfig returns the standard preview configuration.
func DefaultConfig() session.Config {
	c := session.DefaultConfig()
	c.Width = 160
	c.Height = 120
	c.Segments = 8
	c.Seed = 1337
	return c
}

// FromMap populates a config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) session.Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c from a string map. Segment counts that do
// not fit the grid under the retry policy are clamped to the cell count.
func ApplyMap(c session.Config, cfg map[string]string) session.Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Segments = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_policy"]; ok {
		if parsed, err := session.ParseSeedPolicy(v); err == nil {
			c.Placement = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["noise_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise.OriginX = parsed
		}
	}
	if v, ok := cfg["noise_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise.OriginY = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["noise_persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["noise_lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Lacunarity = parsed
		}
	}
	if c.Placement == session.SeedRetry && c.Segments > c.Width*c.Height {
		c.Segments = c.Width * c.Height
	}
	return c
}
