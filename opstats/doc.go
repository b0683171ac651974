// SPDX-License-Identifier: MIT

// Package opstats aggregates edit operations over a whole sample set and
// ranks them for the median-string local search.
//
// One Stats value is built per candidate evaluation. For every sample the
// candidate is aligned with, Stats records the distance and hands the
// alignment's operations to an Aggregator, which merges duplicates (same
// kind, position and symbols) and accumulates a quality score: an estimate
// of how much applying that single operation to the candidate would lower
// the total distance to the set.
//
// Strategies are pluggable and registered by name:
//
//	Aggregators: "frequency", "gain", "balanced"
//	Comparators: "quality", "quality-cost", "position"
//
// Aggregator factories are called once per evaluation; no aggregator state is
// shared between two candidates.
package opstats
