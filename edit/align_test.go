package edit_test

import (
	"testing"

	"github.com/joseias/StrMean/edit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opStrings renders an operation list for compact comparisons.
func opStrings(ops []edit.Operation) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

// sumCosts adds the raw costs of ops.
func sumCosts(ops []edit.Operation) float64 {
	var s float64
	for _, op := range ops {
		s += op.Info.Cost
	}
	return s
}

// corpus is a small fixed set of strings shared by the property tests.
var corpus = []string{"", "a", "ab", "ba", "abc", "kitten", "sitting", "aab", "aba", "baa", "abcabc", "xyz"}

// costModels are the cost models the property tests run under; all are symmetric metrics.
var costModels = map[string]edit.CostModel{
	"unit":  edit.UnitCost{},
	"const": edit.ConstCost{Ins: 2, Del: 2, Sub: 3},
	"table": edit.TableCost{
		Insertions:    map[rune]float64{'a': 0.5},
		Deletions:     map[rune]float64{'a': 0.5},
		Substitutions: map[edit.SymbolPair]float64{{From: 'a', To: 'b'}: 0.75, {From: 'b', To: 'a'}: 0.75},
	},
}

// TestAlign_KittenSitting checks the classic distance and the exact backtrace.
func TestAlign_KittenSitting(t *testing.T) {
	al, err := edit.Align([]rune("kitten"), []rune("sitting"), edit.UnitCost{}, true)
	require.NoError(t, err)
	assert.Equal(t, 3.0, al.Distance)
	assert.Equal(t, []string{
		"i(g,g)@6", "s(n,n)@5", "s(e,i)@4", "s(t,t)@3", "s(t,t)@2", "s(i,i)@1", "s(k,s)@0",
	}, opStrings(al.Operations))

	for k, op := range al.Operations {
		assert.Equal(t, k, op.SeqOrd, "SeqOrd must follow backtrace order")
	}
}

// TestAlign_WithoutOperations verifies that no operation list is built on request.
func TestAlign_WithoutOperations(t *testing.T) {
	al, err := edit.Align([]rune("kitten"), []rune("sitting"), edit.UnitCost{}, false)
	require.NoError(t, err)
	assert.Equal(t, 3.0, al.Distance)
	assert.Nil(t, al.Operations)
}

// TestAlign_EmptySequences covers the base row and column of the table.
func TestAlign_EmptySequences(t *testing.T) {
	al, err := edit.Align(nil, []rune("abc"), edit.UnitCost{}, true)
	require.NoError(t, err)
	assert.Equal(t, 3.0, al.Distance)
	assert.Equal(t, []string{"i(c,c)@0", "i(b,b)@0", "i(a,a)@0"}, opStrings(al.Operations))

	al, err = edit.Align([]rune("abc"), nil, edit.UnitCost{}, true)
	require.NoError(t, err)
	assert.Equal(t, 3.0, al.Distance)
	assert.Equal(t, []string{"d(c,c)@2", "d(b,b)@1", "d(a,a)@0"}, opStrings(al.Operations))

	al, err = edit.Align(nil, nil, edit.UnitCost{}, true)
	require.NoError(t, err)
	assert.Zero(t, al.Distance)
	assert.Empty(t, al.Operations)
}

// TestAlign_TieBreakOrder pins the substitution → insertion → deletion preference.
func TestAlign_TieBreakOrder(t *testing.T) {
	// All three predecessors tie at cost 2: substitution wins.
	al, err := edit.Align([]rune("a"), []rune("b"), edit.ConstCost{Ins: 1, Del: 1, Sub: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, al.Distance)
	assert.Equal(t, []string{"s(a,b)@0"}, opStrings(al.Operations))

	// Substitution too expensive: insertion is preferred over deletion.
	al, err = edit.Align([]rune("a"), []rune("b"), edit.ConstCost{Ins: 1, Del: 1, Sub: 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, al.Distance)
	assert.Equal(t, []string{"i(b,b)@1", "d(a,a)@0"}, opStrings(al.Operations))

	// Swapped symbols: two substitutions, never a delete/insert pair.
	al, err = edit.Align([]rune("ab"), []rune("ba"), edit.UnitCost{}, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, al.Distance)
	assert.Equal(t, []string{"s(b,a)@1", "s(a,b)@0"}, opStrings(al.Operations))
}

// TestAlign_Identity verifies d(X,X)=0 and that only no-op substitutions come back.
func TestAlign_Identity(t *testing.T) {
	for name, cm := range costModels {
		for _, s := range corpus {
			al, err := edit.Align([]rune(s), []rune(s), cm, true)
			require.NoError(t, err)
			assert.Zero(t, al.Distance, "%s: d(%q,%q)", name, s, s)
			for _, op := range al.Operations {
				assert.True(t, op.IsNoop(), "%s: unexpected op %s", name, op)
			}
		}
	}
}

// TestAlign_Properties checks symmetry, cost accounting, reconstruction and
// agreement with the distance-only path on every pair of the corpus.
func TestAlign_Properties(t *testing.T) {
	for name, cm := range costModels {
		for _, xs := range corpus {
			for _, ys := range corpus {
				x, y := []rune(xs), []rune(ys)

				xy, err := edit.Align(x, y, cm, true)
				require.NoError(t, err)
				yx, err := edit.Align(y, x, cm, false)
				require.NoError(t, err)

				assert.InDelta(t, xy.Distance, yx.Distance, 1e-12, "%s: symmetry %q/%q", name, xs, ys)
				assert.InDelta(t, xy.Distance, sumCosts(xy.Operations), 1e-12, "%s: cost sum %q→%q", name, xs, ys)
				assert.Equal(t, xy.Distance, edit.Distance(x, y, cm), "%s: Distance %q→%q", name, xs, ys)

				got, err := edit.FromString(xs).ApplyAll(xy.Operations)
				require.NoError(t, err)
				assert.Equal(t, ys, got.String(), "%s: ApplyAll %q→%q", name, xs, ys)
			}
		}
	}
}

// TestAlign_TriangleInequality checks d(X,Z) ≤ d(X,Y) + d(Y,Z) on the corpus.
func TestAlign_TriangleInequality(t *testing.T) {
	for name, cm := range costModels {
		for _, xs := range corpus {
			for _, ys := range corpus {
				for _, zs := range corpus {
					xz := edit.Distance([]rune(xs), []rune(zs), cm)
					xy := edit.Distance([]rune(xs), []rune(ys), cm)
					yz := edit.Distance([]rune(ys), []rune(zs), cm)
					assert.LessOrEqual(t, xz, xy+yz+1e-12, "%s: %q %q %q", name, xs, ys, zs)
				}
			}
		}
	}
}

// TestAlign_NilCostModel ensures a nil cost model is rejected.
func TestAlign_NilCostModel(t *testing.T) {
	_, err := edit.Align([]rune("a"), []rune("b"), nil, true)
	assert.ErrorIs(t, err, edit.ErrNilCostModel)
	assert.True(t, edit.Distance([]rune("a"), []rune("b"), nil) > 1e300)
}

// driftingCost returns a larger insertion cost on every call, so the
// backtrace never finds the value the fill stored.
type driftingCost struct{ calls *int }

func (d driftingCost) Insertion(rune) float64 {
	*d.calls++
	return float64(*d.calls)
}
func (driftingCost) Deletion(rune) float64          { return 1 }
func (driftingCost) Substitution(_, _ rune) float64 { return 1 }

// TestAlign_BacktraceInconsistency verifies the fatal sentinel instead of a silent result.
func TestAlign_BacktraceInconsistency(t *testing.T) {
	calls := 0
	_, err := edit.Align(nil, []rune("a"), driftingCost{calls: &calls}, true)
	require.ErrorIs(t, err, edit.ErrBacktrace)
	assert.Contains(t, err.Error(), "(0,1)")

	// Distance only: no backtrace, no error path.
	calls = 0
	al, err := edit.Align(nil, []rune("a"), driftingCost{calls: &calls}, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, al.Distance)
}

// TestAlignExamples_StampsWeight checks that operations inherit the target sample's weight.
func TestAlignExamples_StampsWeight(t *testing.T) {
	x := edit.FromString("abc")
	y, err := edit.NewExample([]rune("abd"), 2.5)
	require.NoError(t, err)

	al, err := edit.AlignExamples(x, y, edit.UnitCost{}, true)
	require.NoError(t, err)
	require.Len(t, al.Operations, 3)
	for _, op := range al.Operations {
		assert.Equal(t, 2.5, op.Info.Weight)
	}
	assert.Equal(t, 1.0, edit.ExampleDistance(x, y, edit.UnitCost{}))
}
