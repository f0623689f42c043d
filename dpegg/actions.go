package dpegg

// worstCase computes the worst-case completion value of dropping from
// floor action in state s: 1 + max over every possible threshold f in
// [s.Lb, s.Ub) of value[s.Next(action, f)].
//
// The result is defined only if every successor already has a value
// entry; ok == false otherwise ("does not yet lead to a known
// solution", which marks the action inadmissible for now).
func worstCase(s State, action int, value map[State]int) (themax int, ok bool) {
	themax = -1
	for f := s.Lb; f < s.Ub; f++ {
		v, found := value[s.Next(action, f)]
		if !found {
			return -1, false
		}
		if c := s.Cost(action, f) + v; c > themax {
			themax = c
		}
	}
	return themax, true
}

// admissibleActions enumerates candidate floors in (s.Lb, s.Ub) in
// ascending order and collects those whose worst-case value is defined
// under the (possibly partial) value table. The two returned slices are
// parallel: floors and their worst-case values, ascending-floor order.
//
// When breakOnIncrease is set, the scan stops as soon as two
// consecutive admissible values show an increase. Worst-case cost is
// unimodal in the drop floor for this problem (non-increasing, then
// non-decreasing), so the stop never skips the minimum. This is a
// performance shortcut only; the full scan yields the same optimum.
//
// actions and values are appended to, so callers can reuse backing
// arrays across states (pass them truncated to zero length).
func admissibleActions(s State, value map[State]int, breakOnIncrease bool, actions, values []int) ([]int, []int) {
	for a := s.Lb + 1; a < s.Ub; a++ {
		themax, ok := worstCase(s, a, value)
		if !ok {
			continue
		}
		actions = append(actions, a)
		values = append(values, themax)
		if breakOnIncrease && len(values) >= 2 && values[len(values)-1] > values[len(values)-2] {
			break
		}
	}
	return actions, values
}

// Decisions returns every admissible floor at state s under the frozen
// tables, with the corresponding worst-case values, in ascending-floor
// order. The scan is exhaustive (no early termination) so the result
// exposes the complete decision landscape, not just the prefix up to
// the optimum.
func (p *Policy) Decisions(s State) (actions, values []int) {
	return admissibleActions(s, p.value, false, nil, nil)
}

// DecisionMeans returns, for each of the given actions at state s, the
// mean number of drops to termination across all thresholds in
// [s.Lb, s.Ub), simulated through the frozen action table. An action
// whose simulation hits a missing table entry yields -1.
//
// Together with Decisions this distinguishes equally-optimal actions
// that differ in average behavior.
func (p *Policy) DecisionMeans(s State, actions []int) []float64 {
	means := make([]float64, len(actions))
	width := float64(s.Ub - s.Lb)
	for i, a := range actions {
		total, ok := totalAt(s, a, p.action)
		if !ok {
			means[i] = -1
			continue
		}
		means[i] = float64(total) / width
	}
	return means
}
