package regions

import (
	"image/color"
	"math"

	"regiongrow/internal/grower"
	"regiongrow/internal/session"
)

// maxDisplayLabel is the largest segment index with its own display value;
// higher indices share the last palette entry.
const maxDisplayLabel = math.MaxUint8 - 1

// Palette exposes the colors used for rendering the segment map. Index 0 is
// unassigned ground, index i+1 is segment i.
func (r *Regions) Palette() []color.RGBA { return r.palette }

// buildPalette spreads segment hues evenly around the color wheel.
func buildPalette(n int) []color.RGBA {
	count := min(n, maxDisplayLabel+1)
	palette := make([]color.RGBA, count+1)
	palette[0] = color.RGBA{A: 255}
	for i := 0; i < count; i++ {
		palette[i+1] = hsvToRGBA(float64(i)/float64(n), 0.8, 0.8)
	}
	return palette
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1) * 6
	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

func encodeDisplayValue(label int) uint8 {
	if label == grower.Unassigned || label < 0 {
		return 0
	}
	return uint8(min(label, maxDisplayLabel) + 1)
}

// Notify rebuilds the display buffers from a session snapshot.
func (r *Regions) Notify(st session.State) {
	total := st.Width * st.Height
	if len(r.display) != total {
		r.display = make([]uint8, total)
		r.noiseMask = make([]float32, total)
	}
	for i, label := range st.Labels {
		r.display[i] = encodeDisplayValue(label)
	}
	for i, v := range st.Channel(session.NoiseChannel) {
		r.noiseMask[i] = float32(v)
	}
	r.steps = st.Steps
	r.done = st.Done
}
