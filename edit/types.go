// SPDX-License-Identifier: MIT

// Package edit defines operation kinds, operation values and alignment results.
package edit

import (
	"fmt"
	"strconv"
)

// Kind identifies one of the three edit operations.
//
//   - Substitution — replace the source symbol A by the target symbol B.
//   - Insertion    — insert B before source position Pos.
//   - Deletion     — delete the source symbol A at position Pos.
type Kind byte

const (
	// Substitution replaces one symbol by another (a no-op when A == B).
	Substitution Kind = 's'

	// Insertion adds a symbol to the source sequence.
	Insertion Kind = 'i'

	// Deletion removes a symbol from the source sequence.
	Deletion Kind = 'd'
)

// String returns the single-letter code of the kind.
func (k Kind) String() string {
	switch k {
	case Substitution, Insertion, Deletion:
		return string(rune(k))
	default:
		return "?"
	}
}

// Info carries the cost metadata attached to an operation.
//
// Fields:
//   - Cost    — raw cost charged by the CostModel for this single operation.
//   - Quality — aggregated score assigned by an operation-statistics strategy;
//     zero for operations fresh out of Align.
//   - Weight  — weight of the sample whose alignment produced the operation.
type Info struct {
	Cost    float64
	Quality float64
	Weight  float64
}

// Operation is one edit step produced by the backtrace of Align.
//
// Operations are plain values: every method returns a modified copy and
// never mutates the receiver.
//
// Fields:
//   - Kind   — Substitution, Insertion or Deletion.
//   - A, B   — source and target symbol; equal for insertions and deletions.
//   - Pos    — position in the source sequence the operation applies to.
//     For insertions this is the index the new symbol will occupy.
//   - SeqOrd — index within the backtrace list (0 is the last column pair).
//   - Info   — cost metadata.
type Operation struct {
	Kind   Kind
	A, B   rune
	Pos    int
	SeqOrd int
	Info   Info
}

// OpKey is the identity of an operation for aggregation purposes:
// two operations with the same kind, position and symbols have the same
// effect when applied to the same candidate.
type OpKey struct {
	Kind Kind
	Pos  int
	A, B rune
}

// Key returns the aggregation identity of op.
func (op Operation) Key() OpKey {
	return OpKey{Kind: op.Kind, Pos: op.Pos, A: op.A, B: op.B}
}

// IsNoop reports whether op is a substitution of a symbol by itself.
func (op Operation) IsNoop() bool {
	return op.Kind == Substitution && op.A == op.B
}

// WithQuality returns a copy of op carrying the given quality score.
func (op Operation) WithQuality(q float64) Operation {
	op.Info.Quality = q
	return op
}

// WithWeight returns a copy of op carrying the given sample weight.
func (op Operation) WithWeight(w float64) Operation {
	op.Info.Weight = w
	return op
}

// String renders op as kind(a,b)@pos, e.g. "s(k,s)@0" or "i(g,g)@6".
func (op Operation) String() string {
	return fmt.Sprintf("%s(%s,%s)@%s", op.Kind, string(op.A), string(op.B), strconv.Itoa(op.Pos))
}

// Alignment is the result of aligning a source sequence X onto a target Y.
//
// Invariants (when Operations were requested):
//   - Σ op.Info.Cost over Operations == Distance.
//   - NewExample(X, w).ApplyAll(Operations) has the symbols of Y.
//   - Operations[k].SeqOrd == k.
type Alignment struct {
	// Distance is the minimum total edit cost of X → Y.
	Distance float64

	// Operations is the backtrace, ordered from the end of both sequences
	// towards their start. Nil when operations were not requested.
	Operations []Operation
}
