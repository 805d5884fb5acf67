package config

import "sort"

var Presets = map[string]map[string]*Config{
	"cluster": {
		"balanced": {
			Mode: "cluster", NumSignals: 1024, SamplePeriod: 1.0, Strength: 0.5,
			Noise: "gaussian", NoiseAmplitude: 1.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
		"focused": {
			Mode: "cluster", NumSignals: 1024, SamplePeriod: 1.0, Strength: 0.9,
			Noise: "gaussian", NoiseAmplitude: 1.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
		"diffuse": {
			Mode: "cluster", NumSignals: 1024, SamplePeriod: 1.0, Strength: 0.15,
			Noise: "gaussian", NoiseAmplitude: 1.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
		"sparse": {
			Mode: "cluster", NumSignals: 256, SamplePeriod: 1.0, Strength: 0.5,
			Noise: "gaussian", NoiseAmplitude: 1.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
	},
	"trajectory": {
		"reach": {
			Mode: "trajectory", NumSignals: 1024, SamplePeriod: 1.0, Strength: 0.5,
			Noise: "gaussian", NoiseAmplitude: 1.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
		"grasp": {
			Mode: "trajectory", NumSignals: 1024, SamplePeriod: 0.5, Strength: 0.5,
			Noise: "gaussian", NoiseAmplitude: 0.5,
			Start: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 0},
			End:   PoseConfig{X: 12, Y: 21, Z: 28, RotX: 1.2, Duration: 3, Flag: true},
		},
		"wave": {
			Mode: "trajectory", NumSignals: 512, SamplePeriod: 0.25, Strength: 0.5,
			Noise: "uniform", NoiseAmplitude: 2.5,
			Start: PoseConfig{X: -5, Z: 15, Duration: 0},
			End:   PoseConfig{X: 5, Z: 15, RotZ: 0.8, Duration: 4},
		},
		"clean": {
			Mode: "trajectory", NumSignals: 1024, SamplePeriod: 1.0, Strength: 0.5,
			Noise: "gaussian", NoiseAmplitude: 0.0,
			End: PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
		},
	},
}

func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
