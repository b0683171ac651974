// Package strmean computes approximate median strings: the string that
// minimizes the total edit distance to a set of weighted symbol sequences.
//
// 🚀 What is inside?
//
//	A weighted edit-distance engine with exact operation reconstruction and
//	a greedy, operation-guided local search seeded by the set median:
//		• edit/     — Example, CostModel, Align (table + backtrace), Distance
//		• opstats/  — per-candidate statistics, quality strategies, comparators
//		• median/   — Compute (local search), SetMedian (seed), Prometheus metrics
//		• registry/ — named strategy registration resolved at startup
//		• dataset/  — text and YAML sample-set loaders
//		• config/   — YAML + .env/STRMEAN_* configuration with validation
//		• report/   — result and move-log writers
//		• cmd/strmean — the command-line tool (median, batch, distance)
//
// ✨ Quick start
//
//	samples, _ := dataset.Load("set.txt")
//	opts := median.DefaultOptions()
//	seed, _ := median.SetMedian(samples, opts)
//	res, _ := median.Compute(samples, seed.Median, opts)
//	fmt.Println(res.Median, res.Mean)
//
// The search is a hill climber: it stops at the first epoch without an
// improving single edit and makes no claim of global optimality.
package strmean
