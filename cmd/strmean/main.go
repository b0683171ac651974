// SPDX-License-Identifier: MIT

// Command strmean computes approximate median strings of sample sets.
//
// Usage:
//
//	strmean median INPUT OUTPUT          set median seed, local search, OUTPUT + OUTPUT.log
//	strmean batch OUTDIR INPUT...        the same for several inputs in parallel
//	strmean distance A B [--ops]         edit distance (and operations) of two strings
//
// Global flags: --config FILE (YAML), --env-file FILE (default .env),
// --metrics FILE (Prometheus text dump written on exit).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
