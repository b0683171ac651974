// SPDX-License-Identifier: MIT

package median

import (
	"io"
	"log/slog"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/opstats"
)

// DefaultPrecision is the number of decimals kept in move-log statistics.
const DefaultPrecision = 4

// Options configures Compute and SetMedian.
//
// Precision             – decimals of the move-log statistics (≥ 0).
// MaxEpochs             – epoch cap; 0 means until an epoch finds no improvement.
// MaxOperationsPerEpoch – cap on tried (non no-op) operations per epoch; 0 means all.
// Comparator            – total order used to rank operations.
// PruneNonPositiveQuality – drop operations with quality ≤ 0 before ranking.
// NewAggregator         – factory of the quality strategy, called once per evaluation.
// CostModel             – edit costs shared by every alignment.
// TraceRejected         – record rejected candidates in the move log as well.
// Logger                – structured logger; nil discards.
// Metrics               – Prometheus counters; nil disables.
type Options struct {
	Precision               int
	MaxEpochs               int
	MaxOperationsPerEpoch   int
	Comparator              opstats.Comparator
	PruneNonPositiveQuality bool
	NewAggregator           opstats.Factory
	CostModel               edit.CostModel
	TraceRejected           bool
	Logger                  *slog.Logger
	Metrics                 *Metrics
}

// DefaultOptions returns the configuration of the reference algorithm:
// unit costs, balanced quality, quality ranking, pruning on, no caps.
func DefaultOptions() Options {
	return Options{
		Precision:               DefaultPrecision,
		Comparator:              opstats.ByQuality,
		PruneNonPositiveQuality: true,
		NewAggregator:           opstats.NewBalanced,
		CostModel:               edit.UnitCost{},
	}
}

// validateOptions checks Options without looking at the samples.
func validateOptions(opts Options) error {
	if opts.Precision < 0 {
		return ErrBadPrecision
	}
	if opts.MaxEpochs < 0 || opts.MaxOperationsPerEpoch < 0 {
		return ErrNegativeLimit
	}
	if opts.Comparator == nil || opts.NewAggregator == nil || opts.CostModel == nil {
		return ErrEmptyOption
	}

	return nil
}

// logger returns opts.Logger or a discarding logger.
func (opts Options) logger() *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
