package regions

import (
	"strconv"

	"regiongrow/internal/core"
)

// Parameters reports the active configuration and generation progress.
func (r *Regions) Parameters() core.ParameterSnapshot {
	cfg := r.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("n", "Segments", cfg.Segments),
				int64Param("seed", "Seed", cfg.Seed),
				{Key: "seed_policy", Label: "Seed policy", Type: core.ParamTypeString, Value: cfg.Placement.String()},
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("noise_scale", "Scale", cfg.Noise.Scale),
				floatParam("noise_x", "Origin X", cfg.Noise.OriginX),
				floatParam("noise_y", "Origin Y", cfg.Noise.OriginY),
				intParam("noise_octaves", "Octaves", cfg.Noise.Octaves),
				floatParam("noise_persistence", "Persistence", cfg.Noise.Persistence),
				floatParam("noise_lacunarity", "Lacunarity", cfg.Noise.Lacunarity),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("steps", "Steps", r.steps),
				{Key: "done", Label: "Done", Type: core.ParamTypeString, Value: strconv.FormatBool(r.done)},
				intParam("collisions", "Seed collisions", r.sess.Collisions()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (r *Regions) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n", Label: "Segments", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "noise_scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 50, HasMin: true, HasMax: true},
		{Key: "noise_x", Label: "Origin X", Type: core.ParamTypeFloat, Step: 1},
		{Key: "noise_y", Label: "Origin Y", Type: core.ParamTypeFloat, Step: 1},
		{Key: "noise_octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and restarts generation. It
// reports false for unknown keys or values the session rejects.
func (r *Regions) SetIntParameter(key string, value int) bool {
	cfg := r.cfg
	switch key {
	case "w":
		cfg.Width = value
	case "h":
		cfg.Height = value
	case "n":
		cfg.Segments = value
	case "seed":
		cfg.Seed = int64(value)
	case "noise_octaves":
		cfg.Noise.Octaves = value
	default:
		return false
	}
	return r.configure(cfg) == nil
}

// SetFloatParameter updates a floating point tunable and restarts
// generation.
func (r *Regions) SetFloatParameter(key string, value float64) bool {
	cfg := r.cfg
	switch key {
	case "noise_scale":
		cfg.Noise.Scale = value
	case "noise_x":
		cfg.Noise.OriginX = value
	case "noise_y":
		cfg.Noise.OriginY = value
	case "noise_persistence":
		cfg.Noise.Persistence = value
	case "noise_lacunarity":
		cfg.Noise.Lacunarity = value
	default:
		return false
	}
	return r.configure(cfg) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
