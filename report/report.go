// SPDX-License-Identifier: MIT

// Package report writes median-computation results as plain text.
//
// Result file layout:
//
//	SetMedian AvgDist: <mean> TotalDist: <distances computed by SetMedian>
//	<set median>
//	Mean AvgDist: <mean> TotalDist: <all distances> AddDist: <search distances> Stdv: <stdev>
//	<median>
//	PFO <search time in ms>
//	<move log, one entry per line>
//
// The move log alone goes to the companion ".log" file (WriteMoves).
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/joseias/StrMean/median"
	"github.com/joseias/StrMean/opstats"
)

// Summary is everything WriteResult prints.
type Summary struct {
	// RunID, when set, is written as a leading "# run" comment.
	RunID string

	SetMedian median.Result
	Median    median.Result

	// Elapsed is the duration of the local search alone.
	Elapsed time.Duration

	// Precision rounds the reported standard deviation.
	Precision int
}

// WriteResult writes s in the result file layout.
func WriteResult(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)

	if s.RunID != "" {
		fmt.Fprintf(bw, "# run %s\n", s.RunID)
	}
	fmt.Fprintf(bw, "SetMedian AvgDist: %s TotalDist: %d\n",
		ftoa(s.SetMedian.Mean), s.SetMedian.DistanceComputations)
	fmt.Fprintln(bw, s.SetMedian.Median)

	fmt.Fprintf(bw, "Mean AvgDist: %s TotalDist: %d AddDist: %d Stdv: %s\n",
		ftoa(s.Median.Mean),
		s.Median.DistanceComputations+s.SetMedian.DistanceComputations,
		s.Median.DistanceComputations,
		ftoa(opstats.Round(s.Median.Stdev, s.Precision)),
	)
	fmt.Fprintln(bw, s.Median.Median)
	fmt.Fprintf(bw, "PFO %d\n", s.Elapsed.Milliseconds())

	for _, m := range s.Median.Moves {
		fmt.Fprintln(bw, m.String())
	}

	return bw.Flush()
}

// WriteMoves writes one move per line.
func WriteMoves(w io.Writer, moves []median.Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		if _, err := fmt.Fprintln(bw, m.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
