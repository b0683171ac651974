// SPDX-License-Identifier: MIT

// Package edit computes weighted edit distances between symbol sequences and
// reconstructs the exact edit operations realizing a minimum-cost alignment.
//
// 🚀 What is an alignment?
//
//	An alignment of X onto Y is a minimum-cost list of substitutions,
//	insertions and deletions that turns X into Y. Costs come from a
//	CostModel and are position independent:
//	  • Insertion(s)       — cost of inserting symbol s
//	  • Deletion(s)        — cost of deleting symbol s
//	  • Substitution(a, b) — cost of replacing a by b (0 when a == b)
//
// ✨ Key features:
//   - full-table mode: Align fills an (|X|+1)×(|Y|+1) table and optionally
//     backtraces the operation list
//   - distance-only mode: Distance keeps two rolling rows, O(|Y|) memory
//   - deterministic backtrace: substitution, then insertion, then deletion
//     are tried at every cell, so ties always resolve the same way
//   - Example.ApplyAll replays an operation list on X and yields Y exactly
//
// ⚙️ Usage:
//
//	x := []rune("kitten")
//	y := []rune("sitting")
//
//	al, err := edit.Align(x, y, edit.UnitCost{}, true)
//	if err != nil {
//	  // only edit.ErrBacktrace, on an inconsistent cost model
//	}
//	fmt.Println(al.Distance, al.Operations)
//
//	d := edit.Distance(x, y, edit.UnitCost{}) // no operation list
//
// Performance:
//
//   - Time:   O(|X|·|Y|)
//   - Memory: O(|X|·|Y|) (Align) or O(|Y|) (Distance)
//   - Backtrace: O(|X|+|Y|)
package edit
