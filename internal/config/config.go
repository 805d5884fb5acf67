package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/neurosim/internal/neuro"
)

const (
	ModeCluster    = "cluster"
	ModeTrajectory = "trajectory"

	DefaultMode  = ModeCluster
	DefaultNoise = "gaussian"
)

type Config struct {
	Mode           string     `yaml:"mode"`
	NumSignals     int        `yaml:"num_signals"`
	SamplePeriod   float64    `yaml:"sample_period"`
	Seed           int64      `yaml:"seed"`
	Strength       float64    `yaml:"cluster_strength"`
	Noise          string     `yaml:"noise"`
	NoiseAmplitude float64    `yaml:"noise_amplitude"`
	Start          PoseConfig `yaml:"start"`
	End            PoseConfig `yaml:"end"`
}

type PoseConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	RotX     float64 `yaml:"rot_x"`
	RotY     float64 `yaml:"rot_y"`
	RotZ     float64 `yaml:"rot_z"`
	Duration float64 `yaml:"duration"`
	Flag     bool    `yaml:"flag"`
}

func (p PoseConfig) Pose() neuro.Pose {
	flag := 0.0
	if p.Flag {
		flag = 1.0
	}
	return neuro.Pose{
		X: p.X, Y: p.Y, Z: p.Z,
		RotX: p.RotX, RotY: p.RotY, RotZ: p.RotZ,
		Duration: p.Duration,
		Flag:     flag,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Mode:           DefaultMode,
		NumSignals:     neuro.DefaultNumSignals,
		SamplePeriod:   neuro.DefaultSamplePeriod,
		Strength:       neuro.DefaultClusterStrength,
		Noise:          DefaultNoise,
		NoiseAmplitude: neuro.DefaultNoiseAmplitude,
		End:            PoseConfig{X: 10, Y: 20, Z: 30, Duration: 8},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) StartPose() neuro.Pose { return c.Start.Pose() }
func (c *Config) EndPose() neuro.Pose   { return c.End.Pose() }

func (c *Config) ClusterConfig() neuro.ClusterConfig {
	return neuro.ClusterConfig{
		NumSignals: c.NumSignals,
		Strength:   c.Strength,
		Seed:       c.Seed,
	}
}

func (c *Config) TrajectoryConfig() (neuro.TrajectoryConfig, error) {
	noise, err := neuro.ParseNoiseType(c.Noise)
	if err != nil {
		return neuro.TrajectoryConfig{}, err
	}
	return neuro.TrajectoryConfig{
		NumSignals: c.NumSignals,
		Noise:      noise,
		Amplitude:  c.NoiseAmplitude,
		Seed:       c.Seed,
	}, nil
}
