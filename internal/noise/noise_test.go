package noise

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDeterministic(t *testing.T) {
	p := DefaultParams()
	a := Sample(42, 24, 16, p)
	b := Sample(42, 24, 16, p)
	require.True(t, slices.Equal(a.Cells(), b.Cells()), "same inputs must yield the same field")

	c := Sample(43, 24, 16, p)
	assert.False(t, slices.Equal(a.Cells(), c.Cells()), "different seeds should change the field")
}

func TestSampleBounded(t *testing.T) {
	cases := []Params{
		DefaultParams(),
		{Scale: 40, OriginX: -12.5, OriginY: 3, Octaves: 4, Persistence: 0.5, Lacunarity: 2},
		{Scale: 1, Octaves: 3, Persistence: 1.5, Lacunarity: 3},
		{Scale: 0},
	}
	for i, p := range cases {
		field := Sample(9, 32, 32, p)
		assert.Equal(t, 32, field.W)
		assert.Equal(t, 32, field.H)
		for _, v := range field.Cells() {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("[%d] value %f out of [0,1]", i, v)
			}
		}
	}
}

func TestSampleIsSmooth(t *testing.T) {
	p := DefaultParams()
	p.Scale = 2
	field := Sample(5, 64, 64, p)
	maxStep := 0.0
	for y := 0; y < field.H; y++ {
		for x := 1; x < field.W; x++ {
			d := math.Abs(field.At(x, y) - field.At(x-1, y))
			maxStep = math.Max(maxStep, d)
		}
	}
	assert.Less(t, maxStep, 0.25, "adjacent cells should vary gradually")
}

func TestSampleOriginShiftsField(t *testing.T) {
	p := DefaultParams()
	shifted := p
	shifted.OriginX = p.Scale / 2

	base := Sample(1, 16, 4, p)
	moved := Sample(1, 16, 4, shifted)
	// Cell x in the shifted field samples the same point as cell x+8 in the
	// base field.
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.InDelta(t, base.At(x+8, y), moved.At(x, y), 1e-9)
		}
	}
}
