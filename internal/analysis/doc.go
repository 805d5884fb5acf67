// Package analysis provides channel statistics for generated signal batches.
//
// The package characterizes batches along the axes a decoder cares about:
//
//   - [Summarize]: per-channel mean, deviation and range
//   - [CorrelationMatrix]: pairwise Pearson correlation across channels
//   - [ChannelSpectrum]: spectrum of one channel over the batch sequence
//   - [Accumulator]: streaming per-channel statistics
//
// # Cluster Structure
//
// Channels grouped in the same cluster share an activation level, so their
// pairwise correlation rises with cluster strength:
//
//	m := analysis.CorrelationMatrix(batch)
//	if m[0][1] > m[0][11] {
//	    // within-group coupling dominates
//	}
package analysis
