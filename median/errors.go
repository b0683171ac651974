// SPDX-License-Identifier: MIT

package median

import "errors"

// Sentinel errors returned by Compute and SetMedian.
var (
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("median: sample set is empty")

	// ErrEmptyOption indicates a nil Comparator, NewAggregator or CostModel.
	ErrEmptyOption = errors.New("median: required option is not set")

	// ErrBadPrecision indicates Precision < 0.
	ErrBadPrecision = errors.New("median: precision must be non-negative")

	// ErrNegativeLimit indicates MaxEpochs < 0 or MaxOperationsPerEpoch < 0.
	ErrNegativeLimit = errors.New("median: limits must be non-negative")
)
