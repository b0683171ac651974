// SPDX-License-Identifier: MIT

package opstats

import (
	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/registry"
)

// Aggregator accumulates the operations of every alignment of one candidate.
//
// Contract:
//   - Init is called once, before any other method.
//   - AddOperation merges op into the operation with the same edit.OpKey,
//     combining their quality contributions.
//   - Operations returns a fresh slice of merged operations with
//     Info.Quality set; callers may reorder or filter it freely.
type Aggregator interface {
	Init(candidate edit.Example, cm edit.CostModel, sampleCount int)
	AddOperation(op edit.Operation)
	Operations() []edit.Operation
}

// SampleObserver is implemented by aggregators whose quality depends on the
// total weight of the samples seen, including samples that contributed no
// operation. Stats calls ObserveSample once per collected sample, before
// the sample's operations.
type SampleObserver interface {
	ObserveSample(weight float64)
}

// Factory returns a new, uninitialized Aggregator.
type Factory func() Aggregator

// Names of the built-in aggregators.
const (
	AggFrequency = "frequency"
	AggGain      = "gain"
	AggBalanced  = "balanced"
)

// Aggregators is the registry of named aggregator factories.
var Aggregators = registry.New[Factory]("aggregator")

func init() {
	Aggregators.Register(AggFrequency, NewFrequency)
	Aggregators.Register(AggGain, NewGain)
	Aggregators.Register(AggBalanced, NewBalanced)
}

// qualityFn scores a merged operation.
//
//   - support — Σ weight of the occurrences of the operation.
//   - gain    — Σ weight·cost of the occurrences.
//   - cost    — raw cost of one application.
//   - total   — Σ weight of every observed sample.
type qualityFn func(support, gain, cost, total float64) float64

// merged is the accumulator shared by the built-in strategies.
// Insertion order of first occurrence is kept so Operations is deterministic.
type merged struct {
	quality qualityFn

	index   map[edit.OpKey]int
	ops     []edit.Operation
	support []float64
	gain    []float64
	total   float64
}

func newMerged(q qualityFn) *merged {
	return &merged{quality: q}
}

// Init resets the accumulator for candidate. The built-in strategies only
// need the raw costs carried by the operations, so cm and sampleCount are
// not retained.
func (m *merged) Init(candidate edit.Example, _ edit.CostModel, _ int) {
	// One substitution per candidate position is the common case.
	m.index = make(map[edit.OpKey]int, candidate.Len()+1)
	m.ops = m.ops[:0]
	m.support = m.support[:0]
	m.gain = m.gain[:0]
	m.total = 0
}

// ObserveSample adds a sample's weight to the total.
func (m *merged) ObserveSample(weight float64) {
	m.total += weight
}

// AddOperation merges op by identity.
func (m *merged) AddOperation(op edit.Operation) {
	if m.index == nil {
		m.index = make(map[edit.OpKey]int)
	}

	k := op.Key()
	i, ok := m.index[k]
	if !ok {
		i = len(m.ops)
		m.index[k] = i
		m.ops = append(m.ops, op)
		m.support = append(m.support, 0)
		m.gain = append(m.gain, 0)
	}
	m.support[i] += op.Info.Weight
	m.gain[i] += op.Info.Weight * op.Info.Cost
}

// Operations returns the merged operations; Info.Weight holds the support.
func (m *merged) Operations() []edit.Operation {
	out := make([]edit.Operation, len(m.ops))
	for i, op := range m.ops {
		op.Info.Weight = m.support[i]
		op.Info.Quality = m.quality(m.support[i], m.gain[i], op.Info.Cost, m.total)
		out[i] = op
	}

	return out
}

// NewFrequency scores an operation by the weight of the samples whose
// alignment contains it.
func NewFrequency() Aggregator {
	return newMerged(func(support, _, _, _ float64) float64 { return support })
}

// NewGain scores an operation by Σ weight·cost: the reduction of the total
// distance if every supporting sample got closer and no other got farther.
func NewGain() Aggregator {
	return newMerged(func(_, gain, _, _ float64) float64 { return gain })
}

// NewBalanced scores an operation by its gain minus the cost it would add to
// every sample that does not support it:
//
//	quality = gain − max(0, total − support)·cost
//
// Under unit weights the score is positive only when more than half of the
// samples support the operation.
func NewBalanced() Aggregator {
	return newMerged(func(support, gain, cost, total float64) float64 {
		return gain - max(0, total-support)*cost
	})
}
