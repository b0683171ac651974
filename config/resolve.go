// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/median"
	"github.com/joseias/StrMean/opstats"
)

// Resolve validates cfg and builds the median options it describes.
// Logger and Metrics are left for the caller.
func Resolve(cfg Config) (median.Options, error) {
	if err := cfg.Validate(); err != nil {
		return median.Options{}, err
	}

	cmpFn, err := opstats.Comparators.Lookup(cfg.Comparator)
	if err != nil {
		return median.Options{}, fmt.Errorf("config: %w", err)
	}
	newAgg, err := opstats.Aggregators.Lookup(cfg.Aggregator)
	if err != nil {
		return median.Options{}, fmt.Errorf("config: %w", err)
	}
	cm, err := cfg.Cost.Build()
	if err != nil {
		return median.Options{}, err
	}

	return median.Options{
		Precision:               cfg.Precision,
		MaxEpochs:               cfg.MaxEpochs,
		MaxOperationsPerEpoch:   cfg.MaxOps,
		Comparator:              cmpFn,
		PruneNonPositiveQuality: cfg.PruneNonPositive,
		NewAggregator:           newAgg,
		CostModel:               cm,
		TraceRejected:           cfg.TraceRejected,
	}, nil
}

// Build returns the cost model described by c.
func (c CostConfig) Build() (edit.CostModel, error) {
	fn, err := edit.CostModels.Lookup(c.Model)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	p := edit.CostParams{
		Insertion:    c.Insertion,
		Deletion:     c.Deletion,
		Substitution: c.Substitution,
		Insertions:   symbolCosts(c.Insertions),
		Deletions:    symbolCosts(c.Deletions),
	}
	if len(c.Substitutions) > 0 {
		p.Substitutions = make(map[edit.SymbolPair]float64, len(c.Substitutions))
		for k, v := range c.Substitutions {
			r := []rune(k)
			if len(r) != 2 {
				return nil, fmt.Errorf("substitution key %q: %w", k, ErrInvalid)
			}
			p.Substitutions[edit.SymbolPair{From: r[0], To: r[1]}] = v
		}
	}

	cm := fn(p)
	if err = edit.ValidateCostModel(cm, c.alphabet()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cm, nil
}

func symbolCosts(m map[string]float64) map[rune]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[rune]float64, len(m))
	for k, v := range m {
		for _, r := range k {
			out[r] = v
			break
		}
	}

	return out
}

// alphabet lists the symbols named by the per-symbol tables.
func (c CostConfig) alphabet() []rune {
	var syms []rune
	for _, m := range []map[string]float64{c.Insertions, c.Deletions, c.Substitutions} {
		for k := range m {
			syms = append(syms, []rune(k)...)
		}
	}

	return syms
}
