//go:build ebiten

package ui

import (
	"regiongrow/internal/core"
	"regiongrow/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type noiseProvider interface {
	NoiseMask() []float32
}

// Overlay draws the weighting noise on top of the segment map.
type Overlay struct {
	sim       core.Sim
	scale     int
	showNoise bool
	painter   *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// Update toggles the noise layer on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNoise = !o.showNoise
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showNoise {
		return
	}
	provider, ok := o.sim.(noiseProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	} else if w, h := o.painter.Size(); w != size.W || h != size.H {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	o.painter.BlitMask(screen, provider.NoiseMask(), 255, o.scale)
}
