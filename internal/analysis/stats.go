package analysis

import (
	"math"

	"github.com/san-kum/neurosim/internal/neuro"
)

type ChannelSummary struct {
	Channel int
	Mean    float64
	Std     float64
	Min     int
	Max     int
}

func Summarize(b neuro.Batch) []ChannelSummary {
	summaries := make([]ChannelSummary, neuro.NumChannels)
	for ch := range summaries {
		summaries[ch].Channel = ch
	}
	if len(b) == 0 {
		return summaries
	}

	for ch := 0; ch < neuro.NumChannels; ch++ {
		sum := 0.0
		min := b[0][ch]
		max := b[0][ch]
		for _, sig := range b {
			v := sig[ch]
			sum += float64(v)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		mean := sum / float64(len(b))

		varSum := 0.0
		for _, sig := range b {
			d := float64(sig[ch]) - mean
			varSum += d * d
		}

		summaries[ch].Mean = mean
		summaries[ch].Std = math.Sqrt(varSum / float64(len(b)))
		summaries[ch].Min = min
		summaries[ch].Max = max
	}
	return summaries
}

// CorrelationMatrix computes the Pearson correlation between every channel
// pair across the batch. Channels with zero variance correlate at 0 with
// everything except themselves.
func CorrelationMatrix(b neuro.Batch) [][]float64 {
	m := make([][]float64, neuro.NumChannels)
	for i := range m {
		m[i] = make([]float64, neuro.NumChannels)
		m[i][i] = 1
	}
	if len(b) < 2 {
		return m
	}

	means := make([]float64, neuro.NumChannels)
	for _, sig := range b {
		for ch, v := range sig {
			means[ch] += float64(v)
		}
	}
	for ch := range means {
		means[ch] /= float64(len(b))
	}

	for i := 0; i < neuro.NumChannels; i++ {
		for j := i + 1; j < neuro.NumChannels; j++ {
			var num, vi, vj float64
			for _, sig := range b {
				di := float64(sig[i]) - means[i]
				dj := float64(sig[j]) - means[j]
				num += di * dj
				vi += di * di
				vj += dj * dj
			}
			r := 0.0
			if vi > 0 && vj > 0 {
				r = num / math.Sqrt(vi*vj)
			}
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}
