// Package median computes an approximate median string of a weighted sample
// set by operation-guided local search.
//
// 🚀 What is the median string?
//
//	Given samples S₁…Sₙ with weights w₁…wₙ and an edit-distance d, the
//	median is the string M minimizing Σ d(M, Sᵢ). Finding it exactly is
//	NP-hard; Compute climbs towards a local optimum one edit at a time.
//
// ✨ Algorithm (Compute)
//
//  1. Evaluate the seed against every sample with edit.AlignExamples and
//     aggregate every edit operation of every alignment into opstats.Stats.
//  2. Each epoch ranks the aggregated operations of the current best
//     candidate (optionally dropping those with quality ≤ 0) and tries them
//     in order: apply one operation, skip candidates seen before, evaluate
//     the rest with an early-abort threshold equal to the incumbent sum.
//  3. The first strictly improving candidate becomes the incumbent and ends
//     the epoch; an epoch without improvement ends the search.
//
// SetMedian is the usual seed: the sample with the smallest total distance
// to the set (the set median), computed with the distance-only engine.
//
// ⚙️ Options
//
//	Precision             – decimals of the statistics in the move log.
//	MaxEpochs             – epoch cap, 0 = until no improvement.
//	MaxOperationsPerEpoch – tried operations per epoch, 0 = all.
//	Comparator            – ranking order, see opstats.Comparators.
//	PruneNonPositive      – drop operations with quality ≤ 0 before ranking.
//	NewAggregator         – quality strategy, see opstats.Aggregators.
//	CostModel             – edit costs, see edit.CostModels.
//	TraceRejected         – also log rejected candidates as moves.
//	Logger, Metrics       – optional slog logger and Prometheus counters.
//
// ⏱ Complexity
//
//	One candidate evaluation: O(n·L²) for n samples of length ≈ L.
//	One epoch: at most min(ops, MaxOperationsPerEpoch) evaluations, each
//	usually cut short by the early-abort threshold.
//
// Concurrency: Compute and SetMedian own all of their state; independent
// calls may run in parallel. A shared *Metrics is safe for concurrent use.
package median
