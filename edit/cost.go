// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"
	"math"
)

// CostModel supplies position-independent edit costs.
//
// Contract:
//   - All costs are finite and ≥ 0.
//   - Substitution(a, a) == 0. The engine never asks for it: equal symbols
//     are always aligned for free.
//   - Methods are pure functions of their arguments; the backtrace recomputes
//     them and relies on getting bit-identical values.
type CostModel interface {
	Insertion(s rune) float64
	Deletion(s rune) float64
	Substitution(a, b rune) float64
}

// UnitCost is the Levenshtein cost model: every insertion, deletion and
// substitution of distinct symbols costs 1.
type UnitCost struct{}

// Insertion returns 1.
func (UnitCost) Insertion(rune) float64 { return 1 }

// Deletion returns 1.
func (UnitCost) Deletion(rune) float64 { return 1 }

// Substitution returns 0 for equal symbols and 1 otherwise.
func (UnitCost) Substitution(a, b rune) float64 {
	if a == b {
		return 0
	}

	return 1
}

// ConstCost charges a constant per kind of operation.
type ConstCost struct {
	Ins, Del, Sub float64
}

// Insertion returns c.Ins.
func (c ConstCost) Insertion(rune) float64 { return c.Ins }

// Deletion returns c.Del.
func (c ConstCost) Deletion(rune) float64 { return c.Del }

// Substitution returns 0 for equal symbols and c.Sub otherwise.
func (c ConstCost) Substitution(a, b rune) float64 {
	if a == b {
		return 0
	}

	return c.Sub
}

// SymbolPair is an ordered (from, to) pair used as a substitution table key.
type SymbolPair struct {
	From, To rune
}

// TableCost overrides a fallback model with per-symbol and per-pair costs.
// Missing entries fall through to Default (UnitCost when nil).
type TableCost struct {
	Default       CostModel
	Insertions    map[rune]float64
	Deletions     map[rune]float64
	Substitutions map[SymbolPair]float64
}

func (t TableCost) fallback() CostModel {
	if t.Default == nil {
		return UnitCost{}
	}

	return t.Default
}

// Insertion returns the table entry for s or the fallback cost.
func (t TableCost) Insertion(s rune) float64 {
	if c, ok := t.Insertions[s]; ok {
		return c
	}

	return t.fallback().Insertion(s)
}

// Deletion returns the table entry for s or the fallback cost.
func (t TableCost) Deletion(s rune) float64 {
	if c, ok := t.Deletions[s]; ok {
		return c
	}

	return t.fallback().Deletion(s)
}

// Substitution returns 0 for equal symbols, else the table entry for (a, b)
// or the fallback cost.
func (t TableCost) Substitution(a, b rune) float64 {
	if a == b {
		return 0
	}
	if c, ok := t.Substitutions[SymbolPair{From: a, To: b}]; ok {
		return c
	}

	return t.fallback().Substitution(a, b)
}

// ValidateCostModel evaluates cm over every symbol and symbol pair of alphabet
// and rejects negative or NaN costs.
//
// Errors:
//   - ErrNilCostModel when cm is nil.
//   - ErrNegativeCost (wrapped with the offending symbols).
//
// Complexity: O(|alphabet|²).
func ValidateCostModel(cm CostModel, alphabet []rune) error {
	if cm == nil {
		return ErrNilCostModel
	}

	bad := func(c float64) bool { return c < 0 || math.IsNaN(c) }
	for _, a := range alphabet {
		if c := cm.Insertion(a); bad(c) {
			return fmt.Errorf("ValidateCostModel: insertion(%q)=%v: %w", a, c, ErrNegativeCost)
		}
		if c := cm.Deletion(a); bad(c) {
			return fmt.Errorf("ValidateCostModel: deletion(%q)=%v: %w", a, c, ErrNegativeCost)
		}
		for _, b := range alphabet {
			if a == b {
				continue
			}
			if c := cm.Substitution(a, b); bad(c) {
				return fmt.Errorf("ValidateCostModel: substitution(%q,%q)=%v: %w", a, b, c, ErrNegativeCost)
			}
		}
	}

	return nil
}

// Alphabet returns the distinct symbols of the given examples in first-seen order.
func Alphabet(examples ...Example) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, e := range examples {
		for _, s := range e.symbols {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}
