// Package noise samples the coherent scalar field that weights region growth.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"regiongrow/internal/core"
)

// Params controls how the noise field is sampled over the grid.
type Params struct {
	// Scale is the span of noise space covered by the whole grid along
	// each axis.
	Scale   float64
	OriginX float64
	OriginY float64

	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultParams returns the standard sampling parameters.
func DefaultParams() Params {
	return Params{
		Scale:       5,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Sample evaluates the noise field for a w*h grid. Cell (x, y) is sampled at
// (OriginX + x/w*Scale, OriginY + y/h*Scale). The result is a pure function
// of its inputs and every value lies in [0, 1].
func Sample(seed int64, w, h int, p Params) *core.Grid[float64] {
	field := core.NewGrid[float64](w, h)
	src := opensimplex.NewNormalized(seed)

	octaves := p.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	cells := field.Cells()
	for y := 0; y < field.H; y++ {
		ny := p.OriginY + float64(y)/float64(field.H)*p.Scale
		for x := 0; x < field.W; x++ {
			nx := p.OriginX + float64(x)/float64(field.W)*p.Scale
			cells[field.Index(x, y)] = fractal(src, nx, ny, octaves, p.Persistence, p.Lacunarity)
		}
	}
	return field
}

// fractal sums octaves of normalized noise and divides by the amplitude
// total so the result stays in [0, 1].
func fractal(src opensimplex.Noise, x, y float64, octaves int, persistence, lacunarity float64) float64 {
	if octaves == 1 {
		return clamp01(src.Eval2(x, y))
	}
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += src.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if maxValue <= 0 {
		return 0
	}
	return clamp01(total / maxValue)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
