// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseias/StrMean/dataset"
	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/median"
	"github.com/joseias/StrMean/report"
)

func newMedianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "median INPUT OUTPUT",
		Short: "Compute the median string of one sample set",
		Long: `Loads INPUT (text or YAML), seeds the search with the set median and
writes the result to OUTPUT and the move log to OUTPUT.log.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runMedian(args[0], args[1])
		},
	}
}

// runMedian processes one input file. It only reads shared state, so
// concurrent calls are safe.
func (a *app) runMedian(input, output string) error {
	log := a.logger.With(slog.String("input", input))

	samples, err := dataset.Load(input)
	if err != nil {
		return err
	}

	opts := a.opts
	opts.Logger = log
	if err = edit.ValidateCostModel(opts.CostModel, edit.Alphabet(samples...)); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	set, err := median.SetMedian(samples, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	start := time.Now()
	res, err := median.Compute(samples, set.Median, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	elapsed := time.Since(start)

	if err = writeFile(output, func(f *os.File) error {
		return report.WriteResult(f, report.Summary{
			RunID:     a.runID,
			SetMedian: set,
			Median:    res,
			Elapsed:   elapsed,
			Precision: opts.Precision,
		})
	}); err != nil {
		return err
	}
	if err = writeFile(output+".log", func(f *os.File) error {
		return report.WriteMoves(f, res.Moves)
	}); err != nil {
		return err
	}

	log.Info("median written",
		slog.String("output", output),
		slog.Int("samples", len(samples)),
		slog.Float64("mean", res.Mean),
		slog.Duration("elapsed", elapsed),
	)

	return nil
}

// writeFile creates path and hands it to fill, keeping the first error.
func writeFile(path string, fill func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fill(f)
}
