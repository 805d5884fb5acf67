package neuro

import (
	"context"
	"sync"
)

// Ensemble generates several batches concurrently, one per seed. Seeds run
// from seedStart through seedStart+numRuns-1, so a sweep is reproducible as
// long as seedStart is nonzero.
type Ensemble struct {
	gen       *Generator
	numRuns   int
	seedStart int64
}

func NewEnsemble(g *Generator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{gen: g, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) RunCluster(ctx context.Context, start, end Pose, cfg ClusterConfig) ([]Batch, error) {
	batches := make([]Batch, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)
			batches[idx], errs[idx] = e.gen.GenerateCluster(start, end, cfgCopy)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return batches, nil
}

func (e *Ensemble) RunTrajectory(ctx context.Context, start, end Pose, cfg TrajectoryConfig) ([]Batch, error) {
	batches := make([]Batch, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)
			batches[idx], errs[idx] = e.gen.GenerateTrajectory(start, end, cfgCopy)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return batches, nil
}
