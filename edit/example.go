// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"
	"math"
	"slices"
)

// DefaultWeight is the weight of an Example built without an explicit one.
const DefaultWeight = 1.0

// Example is an immutable symbol sequence with a non-negative weight.
//
// The symbols are copied on construction and on every accessor that exposes
// them; Apply/ApplyAll return new values. The zero Example is the empty
// sequence with weight 0.
type Example struct {
	symbols []rune
	weight  float64
}

// NewExample copies symbols into a new Example with the given weight.
//
// Errors:
//   - ErrNegativeWeight if weight < 0 or NaN.
func NewExample(symbols []rune, weight float64) (Example, error) {
	if weight < 0 || math.IsNaN(weight) {
		return Example{}, fmt.Errorf("NewExample: weight %v: %w", weight, ErrNegativeWeight)
	}

	return Example{symbols: slices.Clone(symbols), weight: weight}, nil
}

// FromString builds an Example of weight DefaultWeight from the runes of s.
func FromString(s string) Example {
	return Example{symbols: []rune(s), weight: DefaultWeight}
}

// Symbols returns a copy of the symbol sequence.
func (e Example) Symbols() []rune { return slices.Clone(e.symbols) }

// Len returns the number of symbols.
func (e Example) Len() int { return len(e.symbols) }

// Weight returns the sample weight.
func (e Example) Weight() float64 { return e.weight }

// WithWeight returns a copy of e carrying weight w (negative or NaN clamps to 0).
func (e Example) WithWeight(w float64) Example {
	if w < 0 || math.IsNaN(w) {
		w = 0
	}

	return Example{symbols: e.symbols, weight: w}
}

// Key returns the memoization identity of e: its literal symbol content.
func (e Example) Key() string { return string(e.symbols) }

// String returns the symbols as a string.
func (e Example) String() string { return string(e.symbols) }

// Equal reports whether e and o hold the same symbols (weights are ignored).
func (e Example) Equal(o Example) bool { return slices.Equal(e.symbols, o.symbols) }

// Apply returns a new Example with the single operation op applied.
//
// Position semantics follow the backtrace of Align:
//   - Substitution: symbols[op.Pos] = op.B, 0 ≤ Pos < Len.
//   - Insertion:    op.B is inserted so that it ends at index op.Pos, 0 ≤ Pos ≤ Len.
//   - Deletion:     symbols[op.Pos] is removed, 0 ≤ Pos < Len.
//
// Errors:
//   - ErrBadPosition when op.Pos is out of range for e.
//
// Complexity: O(Len) time and space.
func (e Example) Apply(op Operation) (Example, error) {
	out, err := applyAt(slices.Clone(e.symbols), op, op.Pos)
	if err != nil {
		return Example{}, err
	}

	return Example{symbols: out, weight: e.weight}, nil
}

// ApplyAll replays an Alignment's operation list on e.
//
// The list is in backtrace order (end of the sequences first), so it is
// consumed from its last entry to its first, left to right over e, while a
// running offset tracks how earlier insertions and deletions shifted the
// source positions. For ops = Align(x, y, cm, true).Operations and
// e.Symbols() == x, the result holds exactly the symbols of y.
//
// Errors:
//   - ErrBadPosition when an operation does not fit the partially edited sequence.
//
// Complexity: O(Len + len(ops)·Len) worst case, O(Len + len(ops)) when most
// operations are substitutions.
func (e Example) ApplyAll(ops []Operation) (Example, error) {
	out := slices.Clone(e.symbols)
	offset := 0

	var err error
	for k := len(ops) - 1; k >= 0; k-- {
		op := ops[k]
		if out, err = applyAt(out, op, op.Pos+offset); err != nil {
			return Example{}, fmt.Errorf("ApplyAll: op %d %s: %w", k, op, err)
		}
		switch op.Kind {
		case Insertion:
			offset++
		case Deletion:
			offset--
		}
	}

	return Example{symbols: out, weight: e.weight}, nil
}

// applyAt applies op at index at of s, reusing s when the length is unchanged.
func applyAt(s []rune, op Operation, at int) ([]rune, error) {
	switch op.Kind {
	case Substitution:
		if at < 0 || at >= len(s) {
			return nil, ErrBadPosition
		}
		s[at] = op.B

		return s, nil

	case Insertion:
		if at < 0 || at > len(s) {
			return nil, ErrBadPosition
		}

		return slices.Insert(s, at, op.B), nil

	case Deletion:
		if at < 0 || at >= len(s) {
			return nil, ErrBadPosition
		}

		return slices.Delete(s, at, at+1), nil

	default:
		return nil, fmt.Errorf("unknown kind %q: %w", byte(op.Kind), ErrBadPosition)
	}
}
