// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Sentinel errors returned by Load and Read.
var (
	// ErrEmptySet indicates a source without any sample.
	ErrEmptySet = errors.New("dataset: no samples")

	// ErrBadWeight indicates a weight that is not a non-negative number.
	ErrBadWeight = errors.New("dataset: invalid sample weight")

	// ErrUnknownFormat indicates a format name other than text or yaml.
	ErrUnknownFormat = errors.New("dataset: unknown format")
)
