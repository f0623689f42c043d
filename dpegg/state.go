package dpegg

import "fmt"

// State is a search state: Eggs intact eggs remain, and the unknown
// threshold floor f* is known to satisfy Lb ≤ f* < Ub.
//
// States are immutable value keys (0 ≤ Lb < Ub); transitions produce a
// new State rather than mutating the receiver. The zero-width terminal
// form Ub == Lb+1 means f* = Lb is localized exactly.
type State struct {
	Eggs int // intact eggs remaining
	Lb   int // inclusive lower bound on f*
	Ub   int // exclusive upper bound on f*
}

// IsTerminal reports whether the threshold is exactly localized
// (Ub == Lb+1) with a non-negative egg budget.
func (s State) IsTerminal() bool {
	return s.Ub == s.Lb+1 && s.Lb >= 0 && s.Eggs >= 0
}

// IsFailed reports whether the search can no longer make progress:
// the egg budget is exhausted (or negative) while the range is still
// wider than one floor. Failed states are never stored in the tables.
func (s State) IsFailed() bool {
	return s.Eggs < 0 || (s.Eggs == 0 && s.Ub > s.Lb+1)
}

// Next returns the state after dropping an egg from floor, given the
// true threshold limit. If floor > limit the egg breaks: one egg is
// lost and the upper bound tightens to floor. Otherwise the egg
// survives and the lower bound rises to floor.
func (s State) Next(floor, limit int) State {
	if floor > limit {
		s.Eggs--
		if floor < s.Ub {
			s.Ub = floor
		}
		return s
	}
	if floor > s.Lb {
		s.Lb = floor
	}
	return s
}

// Cost returns the cost of a single drop. It is always 1 here,
// independent of the floor; kept as a method so a variable cost model
// slots in without touching the search.
func (s State) Cost(floor, limit int) int {
	return 1
}

// String renders the state as "(e = E, lb = L, ub = U)".
func (s State) String() string {
	return fmt.Sprintf("(e = %d, lb = %d, ub = %d)", s.Eggs, s.Lb, s.Ub)
}
