// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"
	"math"
)

// Align — weighted edit distance with operation backtrace
//
// Description:
//
//	Align computes the minimum total cost of turning x into y with
//	insertions, deletions and substitutions priced by cm, and optionally
//	reconstructs one optimal operation list.
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y). Allocate an (n+1)x(m+1) table D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = D[i-1][0] + Deletion(x[i-1])
//     D[0][j] = D[0][j-1] + Insertion(y[j-1])
//  3. For i = 1..n, j = 1..m:
//     del = D[i-1][j]   + Deletion(x[i-1])
//     ins = D[i][j-1]   + Insertion(y[j-1])
//     sub = D[i-1][j-1] + Substitution(x[i-1], y[j-1])   (0 when equal)
//     D[i][j] = min(del, ins, sub)
//  4. distance = D[n][m].
//  5. If withOperations, walk back from (n,m) to (0,0). At every cell the
//     three predecessors are re-priced with cm and the first one whose
//     cost plus edge cost equals D[i][j] is taken, in the fixed order
//     substitution, insertion, deletion.
//
// Complexity:
//
//	Time   = O(n·m) fill + O(n+m) backtrace
//	Memory = O(n·m)
//
// Errors:
//   - ErrNilCostModel — cm is nil.
//   - ErrBacktrace    — no predecessor matched during the backtrace.
func Align(x, y []rune, cm CostModel, withOperations bool) (Alignment, error) {
	if cm == nil {
		return Alignment{}, ErrNilCostModel
	}

	n, m := len(x), len(y)
	dp := fillTable(x, y, cm)
	cols := m + 1

	al := Alignment{Distance: dp[n*cols+m]}
	if !withOperations {
		return al, nil
	}

	ops, err := backtrace(x, y, cm, dp)
	if err != nil {
		return Alignment{}, err
	}
	al.Operations = ops

	return al, nil
}

// AlignExamples aligns x onto y like Align and stamps every returned
// operation with the weight of y, the sample that produced it.
func AlignExamples(x, y Example, cm CostModel, withOperations bool) (Alignment, error) {
	al, err := Align(x.symbols, y.symbols, cm, withOperations)
	if err != nil {
		return Alignment{}, fmt.Errorf("AlignExamples(%q, %q): %w", x.String(), y.String(), err)
	}
	for k := range al.Operations {
		al.Operations[k].Info.Weight = y.weight
	}

	return al, nil
}

// Distance returns the weighted edit distance between x and y without
// building an Alignment or an operation list. It keeps two rolling rows of
// the table. A nil cm yields +Inf.
//
// Complexity: O(n·m) time, O(m) memory.
func Distance(x, y []rune, cm CostModel) float64 {
	if cm == nil {
		return math.Inf(1)
	}

	m := len(y)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + cm.Insertion(y[j-1])
	}

	for i := 1; i <= len(x); i++ {
		xi := x[i-1]
		wDel := cm.Deletion(xi)
		curr[0] = prev[0] + wDel
		for j := 1; j <= m; j++ {
			curr[j] = min3(
				prev[j]+wDel,
				curr[j-1]+cm.Insertion(y[j-1]),
				prev[j-1]+subCost(cm, xi, y[j-1]),
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// ExampleDistance is Distance over the symbols of two Examples.
func ExampleDistance(x, y Example, cm CostModel) float64 {
	return Distance(x.symbols, y.symbols, cm)
}

// fillTable builds the flat row-major (n+1)x(m+1) DP table; cell (i,j) lives
// at i*(m+1)+j.
func fillTable(x, y []rune, cm CostModel) []float64 {
	n, m := len(x), len(y)
	cols := m + 1
	dp := make([]float64, (n+1)*cols)

	for i := 1; i <= n; i++ {
		dp[i*cols] = dp[(i-1)*cols] + cm.Deletion(x[i-1])
	}
	for j := 1; j <= m; j++ {
		dp[j] = dp[j-1] + cm.Insertion(y[j-1])
	}

	var (
		i, j          int
		row, prevRow  int
		del, ins, sub float64
	)
	for i = 1; i <= n; i++ {
		row, prevRow = i*cols, (i-1)*cols
		for j = 1; j <= m; j++ {
			del = dp[prevRow+j] + cm.Deletion(x[i-1])
			ins = dp[row+j-1] + cm.Insertion(y[j-1])
			sub = dp[prevRow+j-1] + subCost(cm, x[i-1], y[j-1])
			dp[row+j] = min3(del, ins, sub)
		}
	}

	return dp
}

// backtrace walks dp from (n,m) to (0,0) and emits one operation per step.
// Predecessors are tried substitution first, then insertion, then deletion.
func backtrace(x, y []rune, cm CostModel, dp []float64) ([]Operation, error) {
	cols := len(y) + 1
	i, j := len(x), len(y)
	ops := make([]Operation, 0, max(i, j))

	var (
		cur, w float64
		seqOrd int
	)
	for i > 0 || j > 0 {
		cur = dp[i*cols+j]

		if i > 0 && j > 0 {
			w = subCost(cm, x[i-1], y[j-1])
			if dp[(i-1)*cols+j-1]+w == cur {
				ops = append(ops, Operation{
					Kind: Substitution, A: x[i-1], B: y[j-1], Pos: i - 1, SeqOrd: seqOrd,
					Info: Info{Cost: w},
				})
				seqOrd++
				i--
				j--

				continue
			}
		}

		if j > 0 {
			w = cm.Insertion(y[j-1])
			if dp[i*cols+j-1]+w == cur {
				ops = append(ops, Operation{
					Kind: Insertion, A: y[j-1], B: y[j-1], Pos: i, SeqOrd: seqOrd,
					Info: Info{Cost: w},
				})
				seqOrd++
				j--

				continue
			}
		}

		if i > 0 {
			w = cm.Deletion(x[i-1])
			if dp[(i-1)*cols+j]+w == cur {
				ops = append(ops, Operation{
					Kind: Deletion, A: x[i-1], B: x[i-1], Pos: i - 1, SeqOrd: seqOrd,
					Info: Info{Cost: w},
				})
				seqOrd++
				i--

				continue
			}
		}

		return nil, fmt.Errorf("backtrace at (%d,%d) cost %v: %w", i, j, cur, ErrBacktrace)
	}

	return ops, nil
}

// subCost prices a substitution, aligning equal symbols for free.
func subCost(cm CostModel, a, b rune) float64 {
	if a == b {
		return 0
	}

	return cm.Substitution(a, b)
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
