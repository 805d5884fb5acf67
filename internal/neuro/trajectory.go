package neuro

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	DefaultNoiseAmplitude = 1.0

	// PoseScale converts pose coordinates into integer channel counts.
	PoseScale = 1024
)

type NoiseType int

const (
	NoiseGaussian NoiseType = iota
	NoiseUniform
)

func (n NoiseType) String() string {
	switch n {
	case NoiseGaussian:
		return "gaussian"
	case NoiseUniform:
		return "uniform"
	}
	return fmt.Sprintf("NoiseType(%d)", int(n))
}

func ParseNoiseType(s string) (NoiseType, error) {
	switch s {
	case "gaussian":
		return NoiseGaussian, nil
	case "uniform":
		return NoiseUniform, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNoiseType, s)
}

type TrajectoryConfig struct {
	NumSignals int
	Noise      NoiseType
	Amplitude  float64
	Seed       int64
}

func DefaultTrajectoryConfig() TrajectoryConfig {
	return TrajectoryConfig{
		NumSignals: DefaultNumSignals,
		Noise:      NoiseGaussian,
		Amplitude:  DefaultNoiseAmplitude,
	}
}

// SampleCount reports how many samples the pose pair spans at the
// generator's sample period.
func (g *Generator) SampleCount(start, end Pose) (int, error) {
	if g.samplePeriod <= 0 {
		return 0, fmt.Errorf("%w, got %g", ErrSamplePeriod, g.samplePeriod)
	}
	n := int(math.Floor((end.Duration-start.Duration)/g.samplePeriod)) + 1
	if n <= 0 {
		return 0, fmt.Errorf("%w: start %g, end %g", ErrDuration, start.Duration, end.Duration)
	}
	return n, nil
}

// GenerateTrajectory synthesizes a batch of position-coded signals. Each
// signal walks the line between the poses, writing the noisy interpolated
// position into channels 0-2 and the clean position into channels 3-5,
// quantized at PoseScale counts per unit. Channels 6-11 hold a snapshot of
// the start pose's orientation fields and never change.
func (g *Generator) GenerateTrajectory(start, end Pose, cfg TrajectoryConfig) (Batch, error) {
	if err := g.validate(cfg.NumSignals); err != nil {
		return nil, err
	}
	if cfg.Amplitude < 0 {
		return nil, fmt.Errorf("%w, got %g", ErrNoiseAmplitude, cfg.Amplitude)
	}
	if cfg.Noise != NoiseGaussian && cfg.Noise != NoiseUniform {
		return nil, fmt.Errorf("%w: %s", ErrNoiseType, cfg.Noise)
	}
	numSamples, err := g.SampleCount(start, end)
	if err != nil {
		return nil, err
	}

	rng := newRand(cfg.Seed)
	batch := make(Batch, cfg.NumSignals)
	for i := range batch {
		batch[i] = g.trajectorySignal(rng, start, end, numSamples, cfg)
	}
	return batch, nil
}

func (g *Generator) trajectorySignal(rng *rand.Rand, start, end Pose, numSamples int, cfg TrajectoryConfig) Signal {
	var sig Signal
	base := [6]float64{start.Z, start.RotX, start.RotY, start.RotZ, start.Duration, start.Flag}
	for j, v := range base {
		q := int(v * PoseScale)
		sig[j] = q
		sig[j+6] = q
	}

	// The ramp divides by the sample count, not the duration delta;
	// decoder calibration downstream depends on this exact slope.
	steps := int(end.Duration / g.samplePeriod)
	for k := 1; k <= steps; k++ {
		t := float64(k) * g.samplePeriod
		frac := t / float64(numSamples)
		x := start.X + (end.X-start.X)*frac
		y := start.Y + (end.Y-start.Y)*frac
		z := start.Z + (end.Z-start.Z)*frac

		sig[0] = int(math.Round((x + noiseSample(rng, cfg.Noise, cfg.Amplitude)) * PoseScale))
		sig[1] = int(math.Round((y + noiseSample(rng, cfg.Noise, cfg.Amplitude)) * PoseScale))
		sig[2] = int(math.Round((z + noiseSample(rng, cfg.Noise, cfg.Amplitude)) * PoseScale))
		sig[3] = int(math.Round(x * PoseScale))
		sig[4] = int(math.Round(y * PoseScale))
		sig[5] = int(math.Round(z * PoseScale))
	}
	return sig
}

func noiseSample(rng *rand.Rand, noise NoiseType, amplitude float64) float64 {
	if noise == NoiseUniform {
		return (rng.Float64()*2 - 1) * amplitude
	}
	return rng.NormFloat64() * amplitude
}
