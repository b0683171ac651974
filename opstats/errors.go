// SPDX-License-Identifier: MIT

package opstats

import "errors"

var (
	// ErrIndexOutOfRange indicates a sample index outside [0, sampleCount).
	ErrIndexOutOfRange = errors.New("opstats: sample index out of range")

	// ErrNilFactory indicates that a nil aggregator factory was supplied.
	ErrNilFactory = errors.New("opstats: nil aggregator factory")
)
