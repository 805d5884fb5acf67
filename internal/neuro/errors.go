package neuro

import "errors"

// Domain errors for signal generation.
var (
	// ErrSignalCount indicates a non-positive batch size request.
	ErrSignalCount = errors.New("neuro: signal count must be positive")

	// ErrSamplePeriod indicates a generator built with a non-positive sample period.
	ErrSamplePeriod = errors.New("neuro: sample period must be positive")

	// ErrDuration indicates a pose pair whose durations span no samples.
	ErrDuration = errors.New("neuro: pose durations span no samples")

	// ErrNoiseType indicates an unrecognized noise model.
	ErrNoiseType = errors.New("neuro: unknown noise type")

	// ErrNoiseAmplitude indicates a negative noise amplitude.
	ErrNoiseAmplitude = errors.New("neuro: noise amplitude must be non-negative")

	// ErrClusterLayout indicates a channel grouping that is not a partition.
	ErrClusterLayout = errors.New("neuro: cluster layout must cover each channel exactly once")
)
