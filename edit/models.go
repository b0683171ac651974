// SPDX-License-Identifier: MIT

package edit

import "github.com/joseias/StrMean/registry"

// CostParams holds the values a named cost model may be built from.
// Each model reads only the fields it needs.
type CostParams struct {
	Insertion    float64
	Deletion     float64
	Substitution float64

	Insertions    map[rune]float64
	Deletions     map[rune]float64
	Substitutions map[SymbolPair]float64
}

// CostModelFn builds a CostModel from parameters.
type CostModelFn func(p CostParams) CostModel

// Names of the built-in cost models.
const (
	ModelUnit     = "unit"
	ModelConstant = "constant"
	ModelTable    = "table"
)

// CostModels is the registry of named cost models.
//
//   - "unit"     — UnitCost, parameters ignored.
//   - "constant" — ConstCost{Insertion, Deletion, Substitution}.
//   - "table"    — TableCost with the per-symbol maps over ConstCost defaults.
var CostModels = registry.New[CostModelFn]("cost model")

func init() {
	CostModels.Register(ModelUnit, func(CostParams) CostModel { return UnitCost{} })
	CostModels.Register(ModelConstant, func(p CostParams) CostModel {
		return ConstCost{Ins: p.Insertion, Del: p.Deletion, Sub: p.Substitution}
	})
	CostModels.Register(ModelTable, func(p CostParams) CostModel {
		return TableCost{
			Default:       ConstCost{Ins: p.Insertion, Del: p.Deletion, Sub: p.Substitution},
			Insertions:    p.Insertions,
			Deletions:     p.Deletions,
			Substitutions: p.Substitutions,
		}
	})
}
