// Package dpegg computes optimal decision policies for the generalized
// egg-drop search problem and verifies them by exhaustive simulation.
//
// 🚀 What is the egg-drop problem?
//
//	With E breakable eggs and an unknown threshold floor somewhere in a
//	range of F floors, find the dropping strategy minimizing the
//	worst-case number of drops needed to localize the threshold
//	exactly. Eggs that break are lost; eggs that survive are reused.
//	The solver "auto-discovers" the classic regimes by brute force:
//	  • E = 1  → linear search from below
//	  • E = 2  → the classic decreasing-stride schedule
//	  • E ≫ 1  → binary search
//
// ✨ Key features:
//   - full value/action tables: the optimal drop floor for every
//     reachable (eggs, lower, upper) knowledge state, not just the bound
//   - fixed-point builder with assertive consistency diagnostics
//   - exhaustive verification: worst case, mean, outcome and
//     floor-usage histograms across every possible threshold
//   - two tie-break rules among equally-optimal drops (median floor, or
//     minimum total drops for a better mean at the same worst case)
//   - independent classical recurrence (ClassicLimit) as a sanity oracle
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eggdrop/dpegg"
//
//	p, err := dpegg.Solve(100, 2, dpegg.WithTieBreak(dpegg.TieBreakTotal))
//	if err != nil { ... }
//
//	v, _ := p.Nominal(100, 2)        // 14: the classic two-egg answer
//	res, err := p.Check(100, 2)      // exhaustive round-trip verification
//	steps, trace, err := p.Run(63)   // drops made when the threshold is 63
//
// Performance:
//
//   - Time:  O(E · F²) table entries, each re-derived a small constant
//     number of times until its level converges
//   - Space: O(E · F²)
//
// Concurrency: Solve runs single-threaded and the returned Policy is
// immutable, so any number of goroutines may Run/Check/inspect it
// concurrently after the build.
//
// See example_test.go for runnable walkthroughs.
package dpegg
