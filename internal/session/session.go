// Package session drives a region-growing run: it places the initial seeds,
// advances the grower, and publishes snapshots to observers.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"regiongrow/internal/core"
	"regiongrow/internal/grower"
	"regiongrow/internal/noise"
	pcore "regiongrow/pkg/core"
)

// ErrStepLimit is returned if a run fails to finish within width*height
// steps, which would mean the grower stopped making progress.
var ErrStepLimit = errors.New("session: step limit exceeded")

// Session owns one generation run. It is not safe for concurrent use; hosts
// that step and read from different goroutines must serialize the calls.
type Session struct {
	cfg Config

	rng    *pcore.RNG
	field  *core.Grid[float64]
	grower *grower.Grower

	seeds      []grower.Coord
	collisions int
	steps      int
	err        error

	observers []Observer
}

// New validates cfg and initializes a session with the initial seeds placed.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	s.init()
	return s, nil
}

// Reset discards all progress and starts over from seed with the same
// dimensions and noise parameters.
func (s *Session) Reset(seed int64) {
	s.cfg.Seed = seed
	s.init()
	s.notify()
}

func (s *Session) init() {
	cfg := s.cfg
	s.rng = pcore.NewRNG(cfg.Seed)
	s.field = noise.Sample(cfg.Seed, cfg.Width, cfg.Height, cfg.Noise)
	s.grower = grower.New(cfg.Width, cfg.Height, cfg.Segments, s.field, s.rng)
	s.seeds = s.seeds[:0]
	s.collisions = 0
	s.steps = 0
	s.err = nil
	s.chooseInitPoints()
}

// chooseInitPoints draws one uniform start cell per segment, in segment order.
func (s *Session) chooseInitPoints() {
	for i := 0; i < s.cfg.Segments; i++ {
		c := s.drawCell()
		if s.grower.Label(c) != grower.Unassigned {
			s.collisions++
			if s.cfg.Placement == SeedRetry {
				for s.grower.Label(c) != grower.Unassigned {
					c = s.drawCell()
				}
			}
		}
		s.seeds = append(s.seeds, c)
		s.grower.Mark(c, i)
	}
}

func (s *Session) drawCell() grower.Coord {
	x := s.rng.IntN(s.cfg.Width)
	y := s.rng.IntN(s.cfg.Height)
	return grower.Coord{X: x, Y: y}
}

// Config returns the configuration of the current run.
func (s *Session) Config() Config { return s.cfg }

// Done reports whether every segment has stopped growing.
func (s *Session) Done() bool { return s.grower.AllDone() }

// Steps reports how many steps have been taken since the last reset.
func (s *Session) Steps() int { return s.steps }

// Err returns the error that halted the session, if any.
func (s *Session) Err() error { return s.err }

// Seeds returns the start cell of every segment.
func (s *Session) Seeds() []grower.Coord { return slices.Clone(s.seeds) }

// Collisions reports how many initial draws hit an already assigned cell.
func (s *Session) Collisions() int { return s.collisions }

// Step advances every live segment by one cell and notifies observers. It is
// a no-op once the session is done. An error halts the session; every later
// call returns the same error.
func (s *Session) Step() error {
	stepped, err := s.advance()
	if err != nil {
		return err
	}
	if stepped {
		s.notify()
	}
	return nil
}

func (s *Session) advance() (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.Done() {
		return false, nil
	}
	if err := s.grower.Step(); err != nil {
		s.err = fmt.Errorf("step %d: %w", s.steps+1, err)
		return false, s.err
	}
	s.steps++
	return true, nil
}

// RunToCompletion steps until every segment is done and returns the number
// of steps it took. ctx is checked between steps; on cancellation the partial
// state is kept and ctx.Err() is returned. Observers are notified once, with
// the final state.
func (s *Session) RunToCompletion(ctx context.Context) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	start := s.steps
	limit := s.cfg.Width * s.cfg.Height
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.steps - start, err
		}
		if s.steps-start >= limit {
			s.err = fmt.Errorf("%w: %d steps on a %dx%d grid", ErrStepLimit, s.steps-start, s.cfg.Width, s.cfg.Height)
			return s.steps - start, s.err
		}
		if _, err := s.advance(); err != nil {
			return s.steps - start, err
		}
	}
	s.notify()
	return s.steps - start, nil
}

// State returns an independent snapshot of the segment map and the noise
// channel.
func (s *Session) State() State {
	return State{
		Segments: s.cfg.Segments,
		Width:    s.cfg.Width,
		Height:   s.cfg.Height,
		Steps:    s.steps,
		Done:     s.Done(),
		Labels:   slices.Clone(s.grower.Labels().Cells()),
		Channels: map[string][]float64{
			NoiseChannel: slices.Clone(s.field.Cells()),
		},
	}
}

// NoiseField returns a copy of the weighting noise.
func (s *Session) NoiseField() *core.Grid[float64] { return s.field.Clone() }

// AddObserver registers o. Observers are notified in registration order and
// registering the same observer twice has no effect.
func (s *Session) AddObserver(o Observer) {
	if o == nil || slices.Contains(s.observers, o) {
		return
	}
	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters o.
func (s *Session) RemoveObserver(o Observer) {
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

func (s *Session) notify() {
	for _, o := range s.observers {
		o.Notify(s.State())
	}
}
