// SPDX-License-Identifier: MIT

package config

import "errors"

// Sentinel errors returned by Load, FromEnv and Resolve.
var (
	// ErrInvalid indicates a configuration rejected by validation.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrBadEnv indicates a STRMEAN_* variable that cannot be parsed.
	ErrBadEnv = errors.New("config: invalid environment value")
)
