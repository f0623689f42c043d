// Package dpegg - value/action table construction.
//
// This file drives the fixed-point iteration that populates the two
// tables forming the optimal policy:
//
//   - V : State → minimum worst-case number of drops still needed,
//   - A : State → the floor to drop from to realize V.
//
// Egg levels are processed in ascending order: a drop that breaks lands
// on the already-frozen level e−1, while a drop that survives stays on
// level e, which is why each level is re-scanned to a fixed point
// rather than filled in one topological pass.
//
// Design principles:
//   - Deterministic: scan order and tie-breaks are fixed; identical
//     inputs yield identical tables.
//   - Strict sentinels: only errors from types.go.
//   - Assertive diagnostics: consistency violations are recorded on the
//     policy (Warnings), never silently tolerated and never corrective.
package dpegg

import "fmt"

// Policy is the frozen result of Solve: the complete optimal decision
// policy for an (F, E) instance, plus build metadata. It is read-only
// after Solve returns; Run, Check and the Decision helpers only read.
type Policy struct {
	// Floors is the floor count F of the solved instance; the initial
	// state of a full run is (E, 0, F+1).
	Floors int

	// Eggs is the egg budget E of the solved instance.
	Eggs int

	// Scans[e-1] is the number of full scans level e needed to
	// converge, the final zero-edit scan included.
	Scans []int

	// Warnings collects consistency diagnostics surfaced during the
	// build, in the order detected. Empty on a healthy build.
	Warnings []string

	opts   Options
	value  map[State]int
	action map[State]int
}

// Solve computes the optimal worst-case policy for floors floors and an
// egg budget of eggs.
//
// Terminal entries V[(e, f, f+1)] = 0 are seeded for every egg count
// and floor; then, for each egg level in ascending order, full scans
// over all (lb, ub) pairs (lb descending, ub ascending) insert or
// improve entries until a scan makes zero insertions and zero
// modifications. An entry is improved when the recomputed value is
// strictly smaller, or equal with a different tie-broken action.
//
// Errors: ErrBadFloors, ErrBadEggs.
func Solve(floors, eggs int, opts ...Option) (*Policy, error) {
	if floors < 1 {
		return nil, ErrBadFloors
	}
	if eggs < 1 {
		return nil, ErrBadEggs
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	p := &Policy{
		Floors: floors,
		Eggs:   eggs,
		opts:   o,
		value:  make(map[State]int),
		action: make(map[State]int),
	}
	p.seedTerminal()

	for e := 1; e <= eggs; e++ {
		scans := 0
		for {
			scans++
			inserts, modifies := p.scanLevel(e)
			if inserts == 0 && modifies == 0 {
				break
			}
		}
		p.Scans = append(p.Scans, scans)
		if o.FullScan {
			p.auditLevel(e)
		}
	}

	return p, nil
}

// seedTerminal inserts the zero-valued terminal entries (e, f, f+1) for
// every egg count 0..Eggs and floor 0..Floors. The action table gets no
// terminal entries; there is nothing left to decide.
func (p *Policy) seedTerminal() {
	for e := 0; e <= p.Eggs; e++ {
		for f := 0; f <= p.Floors; f++ {
			p.value[State{Eggs: e, Lb: f, Ub: f + 1}] = 0
		}
	}
}

// scanLevel performs one full scan of egg level e and returns the edit
// counts. Lower bounds run from Floors down to 0 so that same-level
// "egg survives" successors (which have a strictly larger lower bound)
// are always finalized before the states that depend on them within the
// same scan.
func (p *Policy) scanLevel(e int) (inserts, modifies int) {
	var actions, values []int // reused across states

	for l := p.Floors; l >= 0; l-- {
		for u := l + 1; u <= p.Floors+1; u++ {
			s := State{Eggs: e, Lb: l, Ub: u}
			if s.IsTerminal() {
				continue
			}
			old, exists := p.value[s]

			actions, values = admissibleActions(s, p.value, !p.opts.FullScan, actions[:0], values[:0])

			if len(values) == 0 {
				if exists {
					p.warn("existing nodes must have admissible actions")
				}
				continue
			}
			if s.Eggs == 1 && len(values) != 1 {
				p.warn("there should be exactly 1 admissible drop with 1 egg to-go")
			}

			idx := argmin(values)
			value := values[idx]
			action := selectAction(s, actions, values, value, p.opts.TieBreak, p.action)

			if exists {
				if old > value || (old == value && p.action[s] != action) {
					p.value[s] = value
					p.action[s] = action
					modifies++
				}
				continue
			}
			p.value[s] = value
			p.action[s] = action
			inserts++
		}
	}

	return inserts, modifies
}

// auditLevel re-enumerates every converged state of level e with an
// exhaustive scan and reports states whose admissible-action count
// falls short of the full range width minus one. A violation is a
// symptom of the unimodality assumption failing, not of the table being
// wrong; it is only meaningful once the level has converged, which is
// why this runs as a separate pass.
func (p *Policy) auditLevel(e int) {
	var actions, values []int

	for l := p.Floors; l >= 0; l-- {
		for u := l + 1; u <= p.Floors+1; u++ {
			s := State{Eggs: e, Lb: l, Ub: u}
			if s.IsTerminal() || s.Eggs == 1 {
				continue
			}
			actions, values = admissibleActions(s, p.value, false, actions[:0], values[:0])
			if len(values) != u-l-1 {
				p.warnf("unexpected no. of admissible drops: %s; |A| = %d", s, len(values))
			}
		}
	}
}

// warn records a build diagnostic verbatim.
func (p *Policy) warn(msg string) {
	p.Warnings = append(p.Warnings, msg)
}

// warnf records a formatted build diagnostic.
func (p *Policy) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Value returns the minimum worst-case drop count from state s, if s is
// present in the value table.
func (p *Policy) Value(s State) (int, bool) {
	v, ok := p.value[s]
	return v, ok
}

// Action returns the chosen optimal drop floor at state s, if s is
// present in the action table. Terminal states have no action.
func (p *Policy) Action(s State) (int, bool) {
	a, ok := p.action[s]
	return a, ok
}

// Nominal returns the declared optimal worst-case drop count for the
// sub-instance (floors, eggs), i.e. V[(eggs, 0, floors+1)].
// Any sub-instance with floors ≤ Floors and 1 ≤ eggs ≤ Eggs is covered
// by one build. Errors: ErrUnknownState.
func (p *Policy) Nominal(floors, eggs int) (int, error) {
	v, ok := p.value[State{Eggs: eggs, Lb: 0, Ub: floors + 1}]
	if !ok {
		return 0, ErrUnknownState
	}
	return v, nil
}

// Size returns the entry counts of the value and action tables.
func (p *Policy) Size() (values, actions int) {
	return len(p.value), len(p.action)
}
