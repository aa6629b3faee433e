package session

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"regiongrow/internal/noise"
)

// ErrInvalidParameter is returned when a session is configured with values it
// cannot generate from.
var ErrInvalidParameter = errors.New("session: invalid parameter")

// SeedPolicy decides what happens when two segments draw the same initial
// cell.
type SeedPolicy int

const (
	// SeedRetry redraws until an unassigned cell is found.
	SeedRetry SeedPolicy = iota
	// SeedOverwrite lets the later segment take the cell, leaving the earlier
	// segment to grow from the frontier it already discovered.
	SeedOverwrite
)

func (p SeedPolicy) String() string {
	switch p {
	case SeedRetry:
		return "retry"
	case SeedOverwrite:
		return "overwrite"
	}
	return fmt.Sprintf("SeedPolicy(%d)", int(p))
}

// ParseSeedPolicy parses the String form of a policy.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "retry":
		return SeedRetry, nil
	case "overwrite":
		return SeedOverwrite, nil
	}
	return 0, fmt.Errorf("%w: unknown seed policy %q", ErrInvalidParameter, s)
}

// Config describes a generation run.
type Config struct {
	Width    int
	Height   int
	Segments int
	Seed     int64

	Noise     noise.Params
	Placement SeedPolicy
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    64,
		Height:   64,
		Segments: 6,
		Noise:    noise.DefaultParams(),
	}
}

// Validate reports the first parameter that cannot be generated from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidParameter, c.Width, c.Height)
	}
	if c.Width > math.MaxInt/c.Height {
		return fmt.Errorf("%w: grid %dx%d is too large", ErrInvalidParameter, c.Width, c.Height)
	}
	if c.Segments <= 0 {
		return fmt.Errorf("%w: segment count must be positive, got %d", ErrInvalidParameter, c.Segments)
	}
	switch c.Placement {
	case SeedRetry:
		if c.Segments > c.Width*c.Height {
			return fmt.Errorf("%w: %d segments do not fit in %d cells", ErrInvalidParameter, c.Segments, c.Width*c.Height)
		}
	case SeedOverwrite:
	default:
		return fmt.Errorf("%w: unknown seed policy %d", ErrInvalidParameter, int(c.Placement))
	}
	for _, v := range []float64{c.Noise.Scale, c.Noise.OriginX, c.Noise.OriginY, c.Noise.Persistence, c.Noise.Lacunarity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: noise parameters must be finite", ErrInvalidParameter)
		}
	}
	return nil
}
