// Package dpegg defines core types, configuration options and sentinel
// errors for the egg-drop decision-policy solver.
//
// The solver computes, for a search range of F floors and a budget of E
// breakable eggs, the minimum worst-case number of drops needed to
// localize the unknown threshold floor exactly, together with the
// concrete floor to drop from at every reachable state.
//
// Complexity:
//
//	– Time:  O(E · S · F · W)   where S = number of convergence scans per
//	   egg level (small in practice), W = mean admissible-action count
//	   (bounded by the range width; typically a handful with the default
//	   early-termination scan).
//	– Space: O(E · F²) for the value and action tables (one entry per
//	   reachable (eggs, lb, ub) triple).
//
// Options:
//
//	– TieBreak: rule for choosing among actions sharing the optimal
//	   worst case (median position, or minimum total drops).
//	– FullScan: disable the unimodal early-termination heuristic and
//	   enumerate every candidate floor per state.
//
// Errors (sentinel):
//
//	– ErrBadFloors        if the floor count is < 1.
//	– ErrBadEggs          if the egg count is < 1.
//	– ErrUnknownState     if a queried state has no value-table entry.
//	– ErrIncompletePolicy if a policy run reaches a state with no action
//	   entry (a builder defect; the run aborts).
//	– ErrPolicyMismatch   if exhaustive verification realizes a worst
//	   case different from the declared table value.
package dpegg

import "errors"

// Sentinel errors returned by the dpegg solver.
var (
	// ErrBadFloors indicates a non-positive floor count.
	ErrBadFloors = errors.New("dpegg: floor count must be at least 1")

	// ErrBadEggs indicates a non-positive egg count.
	ErrBadEggs = errors.New("dpegg: egg count must be at least 1")

	// ErrUnknownState indicates that a queried state has no entry in the
	// value table (e.g. an instance larger than the one solved).
	ErrUnknownState = errors.New("dpegg: state not present in value table")

	// ErrIncompletePolicy indicates that a policy run reached a
	// non-terminal state with no action-table entry. The tables are
	// incomplete for the requested instance; the run aborts.
	ErrIncompletePolicy = errors.New("dpegg: no action for reachable state")

	// ErrPolicyMismatch indicates that the worst case realized by
	// exhaustive simulation differs from the value table's declared
	// optimum. The computed policy cannot be trusted.
	ErrPolicyMismatch = errors.New("dpegg: realized worst case disagrees with value table")
)

// TieBreakRule selects among actions that share the optimal worst case.
//
// TieBreakMedian – pick the middle tied floor (by ascending floor order).
//
//	Deterministic and cheap; needs no auxiliary data.
//
// TieBreakTotal  – pick the tied floor minimizing the total number of
//
//	drops summed over every possible threshold, obtained by simulating
//	the partially built action table to termination. Improves the mean
//	drop count without affecting the worst case.
type TieBreakRule int

const (
	// TieBreakMedian picks the middle tied action by floor order.
	TieBreakMedian TieBreakRule = iota

	// TieBreakTotal picks the tied action with the minimum total drop
	// count across all thresholds in the state's range.
	TieBreakTotal
)

// Options configures the table builder.
//
// TieBreak – rule applied among equally-optimal actions (default median).
// FullScan – if true, enumerate every candidate floor per state instead
//
//	of stopping at the first worst-case increase. Slower, but
//	self-verifying: the builder then also checks that non-trivial states
//	expose the full admissible-action count once converged.
type Options struct {
	TieBreak TieBreakRule // Secondary selection rule among tied actions
	FullScan bool         // Disable the unimodal early-termination scan
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTieBreak selects the tie-break rule among equally-optimal actions.
func WithTieBreak(rule TieBreakRule) Option {
	return func(o *Options) {
		o.TieBreak = rule
	}
}

// WithFullScan disables the unimodal early-termination heuristic so that
// every candidate floor is evaluated for every state. The early stop is
// a performance shortcut relying on worst-case cost being unimodal in
// the probe floor; full scan re-validates that assumption via the
// builder's admissible-count diagnostic.
func WithFullScan() Option {
	return func(o *Options) {
		o.FullScan = true
	}
}

// DefaultOptions returns an Options struct with the solver defaults:
// median tie-break and the early-terminating admissible scan.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakMedian,
		FullScan: false,
	}
}
