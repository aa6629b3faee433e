package ui

import (
	"math"
	"strconv"

	"regiongrow/internal/core"
)

// controlState tracks the last known value of one HUD control.
type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool
}

// refresh reads the control's current value from a parameter snapshot.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	s.value = parsed
	s.hasValue = true
}

// target returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from the current value.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	if s.control.Type == core.ParamTypeInt {
		step = math.Max(1, math.Round(step))
	}
	next := s.control.Clamp(s.value + float64(direction)*step)
	return next, math.Abs(next-s.value) > 1e-9
}

// apply pushes a one-step adjustment to the matching setter.
func (s *controlState) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	next, changed := s.target(direction)
	if !changed {
		return false
	}
	var ok bool
	switch s.control.Type {
	case core.ParamTypeInt:
		ok = ints != nil && ints.SetIntParameter(s.control.Key, int(math.Round(next)))
	case core.ParamTypeFloat:
		ok = floats != nil && floats.SetFloatParameter(s.control.Key, next)
	}
	if ok {
		s.value = next
	}
	return ok
}

// format renders the value with a precision matching the control's step.
func (s *controlState) format() string {
	if !s.hasValue {
		return "--"
	}
	if s.control.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(s.value)))
	}
	precision := 1
	switch step := s.control.Step; {
	case step > 0 && step < 0.01:
		precision = 3
	case step > 0 && step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(s.value, 'f', precision, 64)
}
