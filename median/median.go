// SPDX-License-Identifier: MIT

package median

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/opstats"
)

// Compute runs operation-guided local search from seed and returns the best
// candidate found.
//
// Contracts:
//   - samples is not modified; the result Distances is indexed like samples.
//   - SumDist of the incumbent never increases; a candidate replaces it only
//     with a strictly smaller sum.
//   - No candidate string is evaluated twice in one call.
//
// Errors:
//   - ErrNoSamples, ErrBadPrecision, ErrNegativeLimit, ErrEmptyOption.
//   - edit.ErrBacktrace (wrapped) when the cost model breaks the DP invariants.
//
// Complexity: see the package documentation.
func Compute(samples []edit.Example, seed edit.Example, opts Options) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var (
		log   = opts.logger()
		n     = float64(len(samples))
		best  = seed
		moves []Move
	)

	bestStats, err := evaluate(best, samples, math.Inf(1), opts)
	if err != nil {
		return Result{}, fmt.Errorf("Compute: seed %q: %w", seed, err)
	}
	computations := bestStats.Evaluated
	opts.Metrics.incumbent(bestStats.SumDist)

	table := map[string]edit.Example{best.Key(): best}

	epoch := 0
	improved := true
	for improved && (opts.MaxEpochs <= 0 || epoch < opts.MaxEpochs) {
		epoch++
		improved = false
		opts.Metrics.epoch()

		ops := bestStats.Operations()
		if opts.PruneNonPositiveQuality {
			ops = opstats.PruneNonPositive(ops)
		}
		opstats.Rank(ops, opts.Comparator)

		log.Debug("epoch started",
			slog.Int("epoch", epoch),
			slog.Int("operations", len(ops)),
			slog.Float64("sum", bestStats.SumDist),
		)

		rank := 0
		for _, op := range ops {
			if op.IsNoop() {
				continue
			}
			rank++

			cand, err := best.Apply(op)
			if err != nil {
				return Result{}, fmt.Errorf("Compute: epoch %d: %w", epoch, err)
			}

			key := cand.Key()
			if _, seen := table[key]; !seen {
				st, err := evaluate(cand, samples, bestStats.SumDist, opts)
				if err != nil {
					return Result{}, fmt.Errorf("Compute: epoch %d candidate %q: %w", epoch, cand, err)
				}
				computations += st.Evaluated
				table[key] = cand
				opts.Metrics.candidate(st.Aborted)

				if st.SumDist < bestStats.SumDist {
					mv := acceptedMove(rank, op, bestStats, st, n, computations, opts.Precision)
					moves = append(moves, mv)
					best, bestStats, improved = cand, st, true
					opts.Metrics.move(st.SumDist)

					log.Info("move accepted",
						slog.Int("epoch", epoch),
						slog.String("move", mv.String()),
						slog.Float64("sum", st.SumDist),
					)
				} else {
					if st.Aborted {
						log.Debug("candidate aborted",
							slog.String("op", op.String()),
							slog.Int("evaluated", st.Evaluated),
						)
					}
					if opts.TraceRejected {
						moves = append(moves, Move{Rank: rank, Op: op})
					}
				}
			}

			if improved || (opts.MaxOperationsPerEpoch > 0 && rank >= opts.MaxOperationsPerEpoch) {
				break
			}
		}
	}
	opts.Metrics.addDistances(PhaseLocalSearch, computations)

	res := newResult(best, bestStats.Distances, bestStats.SumDist)
	res.DistanceComputations = computations
	res.Epochs = epoch
	res.Candidates = len(table)
	res.Moves = moves

	log.Info("local search finished",
		slog.Int("epochs", epoch),
		slog.Int("candidates", len(table)),
		slog.Int("distance_computations", computations),
		slog.Float64("sum", res.SumDist),
	)

	return res, nil
}

// evaluate aligns candidate against every sample in order and aggregates
// the operations. It stops as soon as the running sum exceeds threshold;
// the operations of the sample that crossed it are not collected and the
// returned Stats is marked Aborted.
func evaluate(candidate edit.Example, samples []edit.Example, threshold float64, opts Options) (*opstats.Stats, error) {
	st, err := opstats.New(candidate, opts.CostModel, len(samples), opts.NewAggregator)
	if err != nil {
		return nil, err
	}

	for i, s := range samples {
		al, err := edit.AlignExamples(candidate, s, opts.CostModel, true)
		if err != nil {
			return nil, err
		}
		if err = st.Record(i, al.Distance); err != nil {
			return nil, err
		}
		if st.Exceeds(threshold) {
			st.Aborted = true
			return st, nil
		}
		st.Collect(s.Weight(), al.Operations)
	}

	return st, nil
}

// acceptedMove builds the log entry of an accepted operation.
func acceptedMove(rank int, op edit.Operation, old, cur *opstats.Stats, n float64, computations, precision int) Move {
	meanOld := opstats.Round(old.SumDist/n, precision)
	meanNew := opstats.Round(cur.SumDist/n, precision)

	return Move{
		Rank:                 rank,
		Op:                   op,
		Accepted:             true,
		MeanOld:              meanOld,
		MeanNew:              meanNew,
		Delta:                opstats.Round(meanOld-meanNew, precision),
		Expected:             opstats.Round(op.Info.Quality/n, precision),
		Stdev:                opstats.Round(opstats.Stdev(cur.Distances, meanNew), precision),
		DistanceComputations: computations,
	}
}
