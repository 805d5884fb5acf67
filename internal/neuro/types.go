package neuro

const NumChannels = 12

type Pose struct {
	X, Y, Z          float64
	RotX, RotY, RotZ float64
	Duration         float64
	Flag             float64 // boolean-like, stored 0 or 1
}

type Signal [NumChannels]int

type Batch []Signal

func (b Batch) Channel(ch int) []float64 {
	series := make([]float64, len(b))
	for i, sig := range b {
		series[i] = float64(sig[ch])
	}
	return series
}

func (b Batch) Clone() Batch {
	c := make(Batch, len(b))
	copy(c, b)
	return c
}
