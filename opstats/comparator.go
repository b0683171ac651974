// SPDX-License-Identifier: MIT

package opstats

import (
	"cmp"
	"slices"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/registry"
)

// Comparator is a total order over operations in the style of cmp.Compare:
// negative when a ranks before b.
type Comparator func(a, b edit.Operation) int

// Names of the built-in comparators.
const (
	CmpQuality     = "quality"
	CmpQualityCost = "quality-cost"
	CmpPosition    = "position"
)

// Comparators is the registry of named comparators.
var Comparators = registry.New[Comparator]("comparator")

func init() {
	Comparators.Register(CmpQuality, ByQuality)
	Comparators.Register(CmpQualityCost, ByQualityThenCost)
	Comparators.Register(CmpPosition, ByPosition)
}

// ByQuality ranks higher quality first; ties by identity.
func ByQuality(a, b edit.Operation) int {
	if c := cmp.Compare(b.Info.Quality, a.Info.Quality); c != 0 {
		return c
	}

	return byIdentity(a, b)
}

// ByQualityThenCost ranks higher quality first, then cheaper operations; ties by identity.
func ByQualityThenCost(a, b edit.Operation) int {
	if c := cmp.Compare(b.Info.Quality, a.Info.Quality); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Info.Cost, b.Info.Cost); c != 0 {
		return c
	}

	return byIdentity(a, b)
}

// ByPosition ranks left-most operations first, higher quality first within a position.
func ByPosition(a, b edit.Operation) int {
	if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Info.Quality, a.Info.Quality); c != 0 {
		return c
	}

	return byIdentity(a, b)
}

// byIdentity orders by position, kind, source and target symbol.
func byIdentity(a, b edit.Operation) int {
	return cmp.Or(
		cmp.Compare(a.Pos, b.Pos),
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.A, b.A),
		cmp.Compare(a.B, b.B),
	)
}

// Rank sorts ops in place by c (stable) and returns it.
func Rank(ops []edit.Operation, c Comparator) []edit.Operation {
	slices.SortStableFunc(ops, c)

	return ops
}

// PruneNonPositive drops every operation whose quality is ≤ 0.
// It reuses the backing array of ops.
func PruneNonPositive(ops []edit.Operation) []edit.Operation {
	return slices.DeleteFunc(ops, func(op edit.Operation) bool {
		return op.Info.Quality <= 0
	})
}
