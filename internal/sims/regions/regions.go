package regions

import (
	"image/color"

	"regiongrow/internal/core"
	"regiongrow/internal/session"
)

// Regions adapts a generation session to the core.Sim contract used by the
// preview app.
type Regions struct {
	cfg  session.Config
	sess *session.Session

	display   []uint8
	noiseMask []float32
	palette   []color.RGBA
	steps     int
	done      bool

	err error
}

// New returns a preview sim with the provided dimensions and segment count
// using defaults for everything else.
func New(w, h, n int) (*Regions, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Segments = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a preview sim for cfg.
func NewWithConfig(cfg session.Config) (*Regions, error) {
	r := &Regions{}
	if err := r.configure(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// configure replaces the session. On error the current session is kept.
func (r *Regions) configure(cfg session.Config) error {
	sess, err := session.New(cfg)
	if err != nil {
		return err
	}
	if r.sess != nil {
		r.sess.RemoveObserver(r)
	}
	r.cfg = cfg
	r.sess = sess
	r.err = nil
	r.palette = buildPalette(cfg.Segments)
	sess.AddObserver(r)
	r.Notify(sess.State())
	return nil
}

// Name returns the simulation identifier.
func (r *Regions) Name() string { return "regions" }

// Size reports the grid dimensions.
func (r *Regions) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Cells exposes the display buffer: 0 for unassigned cells, segment+1
// otherwise.
func (r *Regions) Cells() []uint8 { return r.display }

// NoiseMask exposes the weighting noise as a float32 mask.
func (r *Regions) NoiseMask() []float32 { return r.noiseMask }

// Reset restarts generation. A zero seed reuses the configured seed.
func (r *Regions) Reset(seed int64) {
	if seed == 0 {
		seed = r.cfg.Seed
	}
	r.cfg.Seed = seed
	r.sess.Reset(seed)
	r.err = nil
}

// Step grows every live segment by one cell.
func (r *Regions) Step() {
	if r.err != nil {
		return
	}
	if err := r.sess.Step(); err != nil {
		r.err = err
	}
}

// Done reports whether generation has finished.
func (r *Regions) Done() bool { return r.done }

// Steps reports the number of steps since the last reset.
func (r *Regions) Steps() int { return r.steps }

// Err returns the error that halted generation, if any.
func (r *Regions) Err() error { return r.err }

// Session exposes the underlying session.
func (r *Regions) Session() *session.Session { return r.sess }

// State returns a snapshot of the underlying session.
func (r *Regions) State() session.State { return r.sess.State() }

// Seed returns the seed of the current run.
func (r *Regions) Seed() int64 { return r.cfg.Seed }

// Config returns the active configuration.
func (r *Regions) Config() session.Config { return r.cfg }

func init() {
	core.Register("regions", func(cfg map[string]string) core.Sim {
		r, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			r, _ = NewWithConfig(DefaultConfig())
			r.err = err
		}
		return r
	})
}
