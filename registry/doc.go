// SPDX-License-Identifier: MIT

// Package registry maps configuration names to strategy values.
//
// Strategies (cost models, operation comparators, operation-statistics
// aggregators) are registered once at package init time and resolved by name
// before any computation runs, so the algorithms themselves only ever see the
// resolved interface values.
//
//	var Comparators = registry.New[Comparator]("comparator")
//
//	func init() { Comparators.Register("quality", ByQuality) }
//
//	cmp, err := Comparators.Lookup(cfg.Comparator) // errors.Is(err, registry.ErrUnknown)
package registry
