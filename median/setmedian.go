// SPDX-License-Identifier: MIT

package median

import (
	"log/slog"
	"math"

	"github.com/joseias/StrMean/edit"
)

// SetMedian returns the sample with the smallest sum of distances to the
// whole set. Ties keep the earliest sample. Only opts.CostModel, Logger and
// Metrics are used.
//
// Each row stops as soon as its partial sum exceeds the best complete sum,
// so DistanceComputations is usually well below n·(n−1). The distance of a
// sample to itself is taken as 0 without computing it.
//
// Errors:
//   - ErrNoSamples for an empty set.
//   - ErrEmptyOption when opts.CostModel is nil.
func SetMedian(samples []edit.Example, opts Options) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	if opts.CostModel == nil {
		return Result{}, ErrEmptyOption
	}

	var (
		n            = len(samples)
		bestIdx      = -1
		bestSum      = math.Inf(1)
		bestDists    []float64
		row          = make([]float64, n)
		computations int
	)
	for i, cand := range samples {
		sum := 0.0
		clear(row)
		for j, s := range samples {
			if i == j {
				continue
			}
			d := edit.ExampleDistance(cand, s, opts.CostModel)
			computations++
			row[j] = d
			sum += d
			if sum > bestSum {
				break
			}
		}
		if bestIdx < 0 || sum < bestSum {
			bestIdx, bestSum = i, sum
			bestDists = append(bestDists[:0], row...)
		}
	}
	opts.Metrics.addDistances(PhaseSetMedian, computations)

	res := newResult(samples[bestIdx], bestDists, bestSum)
	res.DistanceComputations = computations
	res.Candidates = n

	opts.logger().Info("set median selected",
		slog.Int("index", bestIdx),
		slog.Float64("sum", bestSum),
		slog.Int("distance_computations", computations),
	)

	return res, nil
}
