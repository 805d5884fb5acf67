package neuro

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	DefaultSamplePeriod    = 1.0
	DefaultNumSignals      = 1024
	DefaultClusterStrength = 0.5

	// MaxAmplitude is the clamp ceiling applied to cluster-mode channels
	// before sporadic noise. Noise lands after the clamp, so final values
	// range over [-25, MaxAmplitude+25].
	MaxAmplitude = 200
)

const (
	ampBase     = 50.0
	ampSpan     = 100.0
	noiseChance = 0.1
	noiseMax    = 25.0
)

type Generator struct {
	samplePeriod float64
}

func New(samplePeriod float64) *Generator {
	return &Generator{samplePeriod: samplePeriod}
}

func (g *Generator) SamplePeriod() float64 { return g.samplePeriod }

type ClusterConfig struct {
	NumSignals int
	Strength   float64
	Seed       int64
	Clusters   []Cluster
}

func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		NumSignals: DefaultNumSignals,
		Strength:   DefaultClusterStrength,
	}
}

// GenerateCluster synthesizes a batch of population-coded signals. Each
// signal draws one activation level per cluster, a blend of sin^2 and cos^2
// terms weighted by cfg.Strength, and modulates every channel in the
// cluster around that level. The start and end poses are accepted for
// symmetry with trajectory generation and do not influence the output.
func (g *Generator) GenerateCluster(start, end Pose, cfg ClusterConfig) (Batch, error) {
	if err := g.validate(cfg.NumSignals); err != nil {
		return nil, err
	}
	clusters := cfg.Clusters
	if clusters == nil {
		clusters = DefaultClusters()
	}
	if err := ValidateClusters(clusters); err != nil {
		return nil, err
	}

	rng := newRand(cfg.Seed)
	batch := make(Batch, cfg.NumSignals)
	for i := range batch {
		batch[i] = clusterSignal(rng, clusters, cfg.Strength)
	}
	return batch, nil
}

func clusterSignal(rng *rand.Rand, clusters []Cluster, strength float64) Signal {
	activations := make([]float64, len(clusters))
	for i := range clusters {
		s := math.Sin(rng.Float64())
		c := math.Cos(rng.Float64())
		activations[i] = s*s*strength + c*c*(1-strength)
	}

	var sig Signal
	for i, cl := range clusters {
		for _, ch := range cl.Channels {
			amp := rng.Float64()*ampSpan + ampBase
			sig[ch] = int(math.Round(activations[i] * amp))
		}
	}

	for ch := range sig {
		if sig[ch] < 0 {
			sig[ch] = 0
		} else if sig[ch] > MaxAmplitude {
			sig[ch] = MaxAmplitude
		}
	}

	for ch := range sig {
		if rng.Float64() < noiseChance {
			sig[ch] += int(math.Round(rng.Float64()*2*noiseMax - noiseMax))
		}
	}
	return sig
}

func (g *Generator) validate(numSignals int) error {
	if g.samplePeriod <= 0 {
		return fmt.Errorf("%w, got %g", ErrSamplePeriod, g.samplePeriod)
	}
	if numSignals <= 0 {
		return fmt.Errorf("%w, got %d", ErrSignalCount, numSignals)
	}
	return nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
