// SPDX-License-Identifier: MIT

package edit

import "errors"

// Sentinel errors of the edit package. Callers branch with errors.Is;
// context (coordinates, symbols) is attached with %w at the return site.
var (
	// ErrBacktrace indicates that the backtrace found no predecessor cell whose
	// cost plus the edge cost equals the current cell. This can only happen with
	// a cost model that breaks the recurrence (negative or NaN costs, or one that
	// is not a pure function of its arguments). It is fatal for the alignment.
	ErrBacktrace = errors.New("edit: inconsistent backtrace")

	// ErrNilCostModel indicates that a nil CostModel was supplied.
	ErrNilCostModel = errors.New("edit: nil cost model")

	// ErrNegativeCost indicates that a cost model returned a negative or NaN cost.
	ErrNegativeCost = errors.New("edit: negative or NaN cost")

	// ErrNegativeWeight indicates that an example was built with a negative or NaN weight.
	ErrNegativeWeight = errors.New("edit: negative or NaN weight")

	// ErrBadPosition indicates an operation whose position falls outside the
	// sequence it is applied to.
	ErrBadPosition = errors.New("edit: operation position out of range")
)
