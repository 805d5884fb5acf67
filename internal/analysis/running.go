package analysis

import (
	"math"

	"github.com/san-kum/neurosim/internal/neuro"
)

// Accumulator tracks per-channel statistics incrementally, for consumers
// that observe signals as they stream rather than holding a whole batch.
type Accumulator struct {
	count int
	sum   [neuro.NumChannels]float64
	sumSq [neuro.NumChannels]float64
	min   [neuro.NumChannels]int
	max   [neuro.NumChannels]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) Observe(sig neuro.Signal) {
	if a.count == 0 {
		for ch, v := range sig {
			a.min[ch] = v
			a.max[ch] = v
		}
	}
	for ch, v := range sig {
		f := float64(v)
		a.sum[ch] += f
		a.sumSq[ch] += f * f
		if v < a.min[ch] {
			a.min[ch] = v
		}
		if v > a.max[ch] {
			a.max[ch] = v
		}
	}
	a.count++
}

func (a *Accumulator) Count() int { return a.count }

func (a *Accumulator) Summary() []ChannelSummary {
	summaries := make([]ChannelSummary, neuro.NumChannels)
	for ch := range summaries {
		summaries[ch].Channel = ch
		if a.count == 0 {
			continue
		}
		n := float64(a.count)
		mean := a.sum[ch] / n
		variance := a.sumSq[ch]/n - mean*mean
		if variance < 0 {
			variance = 0
		}
		summaries[ch].Mean = mean
		summaries[ch].Std = math.Sqrt(variance)
		summaries[ch].Min = a.min[ch]
		summaries[ch].Max = a.max[ch]
	}
	return summaries
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
