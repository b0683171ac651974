// SPDX-License-Identifier: MIT

package median

import (
	"strconv"
	"strings"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/opstats"
)

// Result is the outcome of Compute or SetMedian.
type Result struct {
	// Median is the best candidate found.
	Median edit.Example

	// SumDist is Σ d(Median, sample) over the sample set.
	SumDist float64

	// Mean is SumDist / number of samples.
	Mean float64

	// Stdev is the population standard deviation of Distances around Mean.
	Stdev float64

	// Distances[i] is d(Median, samples[i]).
	Distances []float64

	// DistanceComputations counts every pairwise distance computed by the call.
	DistanceComputations int

	// Epochs is the number of local-search epochs run (0 for SetMedian).
	Epochs int

	// Candidates is the size of the candidate table at the end of the run.
	Candidates int

	// Moves is the move log in acceptance order.
	Moves []Move
}

// Move is one entry of the move log.
//
// Rank is the 1-based position of Op among the tried operations of its
// epoch. For rejected candidates (Options.TraceRejected) only Rank and Op are set.
// Statistics are rounded to Options.Precision.
type Move struct {
	Rank     int
	Op       edit.Operation
	Accepted bool

	MeanOld  float64
	MeanNew  float64
	Delta    float64
	Expected float64
	Stdev    float64

	// DistanceComputations is the running total at acceptance time.
	DistanceComputations int
}

// String renders the move as
//
//	rank-op meanOld meanNew delta expected stdev computations
//
// or rank-op for a rejected candidate.
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.Rank))
	b.WriteByte('-')
	b.WriteString(m.Op.String())
	if !m.Accepted {
		return b.String()
	}
	for _, x := range [...]float64{m.MeanOld, m.MeanNew, m.Delta, m.Expected, m.Stdev} {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(m.DistanceComputations))

	return b.String()
}

// MoveLog returns the String form of every move.
func (r Result) MoveLog() []string {
	out := make([]string, len(r.Moves))
	for i, m := range r.Moves {
		out[i] = m.String()
	}

	return out
}

// newResult fills the summary statistics of a finished search.
func newResult(best edit.Example, distances []float64, sum float64) Result {
	r := Result{
		Median:    best,
		SumDist:   sum,
		Distances: distances,
	}
	if len(distances) > 0 {
		r.Mean = sum / float64(len(distances))
	}
	r.Stdev = opstats.Stdev(distances, r.Mean)

	return r
}
