// Package eggdrop computes optimal decision policies for the
// generalized egg-drop search problem — and then proves them right by
// simulating every possible outcome.
//
// 🚀 What is this?
//
//	Given E breakable eggs and an unknown threshold floor within F
//	floors, the solver builds the complete value/action tables of the
//	optimal worst-case strategy: not just the famous minimal drop
//	count, but the exact floor to drop from at every reachable
//	knowledge state. Exhaustive verification then confirms the tables
//	and reports the statistics (mean drops, histograms) that tell
//	apart policies sharing the same worst case.
//
// ✨ Why is it fun?
//
//   - Linear search, binary search and the classic two-egg schedule all
//     fall out of the same brute-force fixed point; nothing is
//     special-cased
//   - The tie-break rule shows that "optimal" is not unique: same worst
//     case, different histograms
//   - An independent classical recurrence cross-checks every answer
//
// Everything lives in two places:
//
//	dpegg/     — the solver, verifier and classical oracle
//	cmd/dpegg/ — CLI producing the full report and execution traces
//
// Quick taste (10 floors, 2 eggs → 4 drops):
//
//	p, _ := dpegg.Solve(10, 2)
//	v, _ := p.Nominal(10, 2)         // 4
//	_, trace, _ := p.Run(6)          // stride first, then floor by floor
//
// See dpegg's package documentation and examples/ for walkthroughs.
package eggdrop
