// SPDX-License-Identifier: MIT

package opstats

import (
	"fmt"
	"math"

	"github.com/joseias/StrMean/edit"
)

// Stats is the evaluation record of one candidate against a sample set.
//
// Lifecycle: built by New for one candidate, filled sample by sample with
// Record/Collect, then either kept as the incumbent's statistics or dropped.
// A Stats with Aborted == true holds a partial sum that already exceeded the
// caller's threshold; it is only good for rejecting the candidate.
type Stats struct {
	// Evaluated counts the samples aligned so far (one distance computation each).
	Evaluated int

	// SumDist is the running sum of distances to the aligned samples.
	SumDist float64

	// Distances holds the distance to sample i at index i; len == sample count.
	// Entries of samples never reached by an aborted evaluation stay 0.
	Distances []float64

	// Aborted is set when the evaluation stopped early.
	Aborted bool

	agg Aggregator
}

// New returns an empty Stats for candidate, with a fresh aggregator from
// newAgg initialized for sampleCount samples.
//
// Errors:
//   - ErrNilFactory when newAgg is nil.
func New(candidate edit.Example, cm edit.CostModel, sampleCount int, newAgg Factory) (*Stats, error) {
	if newAgg == nil {
		return nil, ErrNilFactory
	}

	agg := newAgg()
	agg.Init(candidate, cm, sampleCount)

	return &Stats{Distances: make([]float64, sampleCount), agg: agg}, nil
}

// Record stores the distance to sample index and adds it to the running sum.
//
// Errors:
//   - ErrIndexOutOfRange when index is not a valid sample index.
func (s *Stats) Record(index int, dist float64) error {
	if index < 0 || index >= len(s.Distances) {
		return fmt.Errorf("Record(%d) of %d: %w", index, len(s.Distances), ErrIndexOutOfRange)
	}
	s.Evaluated++
	s.SumDist += dist
	s.Distances[index] = dist

	return nil
}

// Exceeds reports whether the running sum is strictly above threshold.
func (s *Stats) Exceeds(threshold float64) bool {
	return s.SumDist > threshold
}

// Collect feeds the operations of one sample's alignment to the aggregator.
func (s *Stats) Collect(sampleWeight float64, ops []edit.Operation) {
	if obs, ok := s.agg.(SampleObserver); ok {
		obs.ObserveSample(sampleWeight)
	}
	for _, op := range ops {
		s.agg.AddOperation(op)
	}
}

// Operations returns the merged, quality-scored operations collected so far.
func (s *Stats) Operations() []edit.Operation {
	return s.agg.Operations()
}

// Mean returns SumDist / len(Distances), or 0 for an empty set.
func (s *Stats) Mean() float64 {
	if len(s.Distances) == 0 {
		return 0
	}

	return s.SumDist / float64(len(s.Distances))
}

// Stdev returns the population standard deviation of Distances around mean.
func Stdev(distances []float64, mean float64) float64 {
	if len(distances) == 0 {
		return 0
	}

	var acc, d float64
	for _, x := range distances {
		d = x - mean
		acc += d * d
	}

	return math.Sqrt(acc / float64(len(distances)))
}

// Round rounds x half away from zero to the given number of decimals.
// A negative precision returns x unchanged.
func Round(x float64, precision int) float64 {
	if precision < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	p := math.Pow(10, float64(precision))

	return math.Round(x*p) / p
}
