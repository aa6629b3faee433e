package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"regiongrow/internal/core"
)

type fakeSetter struct {
	accept bool
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSetter) SetIntParameter(key string, v int) bool {
	if f.ints == nil {
		f.ints = map[string]int{}
	}
	f.ints[key] = v
	return f.accept
}

func (f *fakeSetter) SetFloatParameter(key string, v float64) bool {
	if f.floats == nil {
		f.floats = map[string]float64{}
	}
	f.floats[key] = v
	return f.accept
}

func snapshot(key, value string) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Params: []core.Parameter{{Key: key, Value: value}}}}}
}

func TestControlRefresh(t *testing.T) {
	s := &controlState{control: core.ParameterControl{Key: "n", Type: core.ParamTypeInt}}
	s.refresh(snapshot("n", "6"))
	assert.True(t, s.hasValue)
	assert.Equal(t, "6", s.format())

	s.refresh(snapshot("other", "6"))
	assert.False(t, s.hasValue)
	assert.Equal(t, "--", s.format())

	s.refresh(snapshot("n", "six"))
	assert.False(t, s.hasValue)
}

func TestControlTargetClamps(t *testing.T) {
	s := &controlState{
		control:  core.ParameterControl{Key: "n", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 4, HasMin: true, HasMax: true},
		value:    4,
		hasValue: true,
	}
	_, changed := s.target(1)
	assert.False(t, changed, "already at max")

	next, changed := s.target(-1)
	assert.True(t, changed)
	assert.Equal(t, 3.0, next)

	s.value = 1
	_, changed = s.target(-1)
	assert.False(t, changed, "already at min")
}

func TestControlApply(t *testing.T) {
	setter := &fakeSetter{accept: true}
	s := &controlState{
		control:  core.ParameterControl{Key: "noise_scale", Type: core.ParamTypeFloat, Step: 0.5},
		value:    2,
		hasValue: true,
	}
	assert.True(t, s.apply(1, setter, setter))
	assert.Equal(t, 2.5, setter.floats["noise_scale"])
	assert.Equal(t, 2.5, s.value)
	assert.Equal(t, "2.5", s.format())

	setter.accept = false
	assert.False(t, s.apply(1, setter, setter))
	assert.Equal(t, 2.5, s.value, "rejected updates keep the old value")

	ints := &controlState{control: core.ParameterControl{Key: "n", Type: core.ParamTypeInt}, value: 3, hasValue: true}
	assert.False(t, ints.apply(1, nil, setter), "no int setter available")
	setter.accept = true
	assert.True(t, ints.apply(-1, setter, nil))
	assert.Equal(t, 2, setter.ints["n"])
}
