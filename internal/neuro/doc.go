// Package neuro synthesizes artificial motor-intent signal batches for
// brain-computer-interface experiments.
//
// A [Generator] turns a pair of kinematic poses into batches of
// twelve-channel integer signals using one of two strategies:
//
//   - [Generator.GenerateCluster]: draws one activation level per electrode
//     group ([DefaultClusters]) and modulates each channel of the group
//     around it, yielding the correlated population activity a decoder
//     trains against.
//   - [Generator.GenerateTrajectory]: interpolates the spatial path between
//     the poses, quantizes positions at [PoseScale] counts per unit, and
//     perturbs the position channels with gaussian or uniform noise.
//
// An [Ensemble] fans one configuration out over consecutive seeds for
// distribution checks that need more than a single batch.
//
// # Example
//
//	gen := neuro.New(neuro.DefaultSamplePeriod)
//	batch, err := gen.GenerateCluster(start, end, neuro.DefaultClusterConfig())
//
// # Thread Safety
//
// Generators hold no mutable state. Every generate call builds its own
// random source from the config seed, so concurrent calls are safe. A seed
// of zero draws time-based entropy; any other seed reproduces the batch
// exactly.
package neuro
