package dpegg

// totalAt simulates the action table from every successor of dropping
// at floor action in state s, one simulation per possible threshold in
// [s.Lb, s.Ub), and returns the total number of drops across all of
// them (the first drop included).
//
// During the build this reads same-level action entries while the level
// is still converging. The scan order (descending lower bound) has
// already finalized every state reachable from s at the current level,
// so the lookups resolve; should that invariant ever break, totalAt
// reports ok == false instead of spinning on a missing entry.
func totalAt(s State, action int, actionTab map[State]int) (total int, ok bool) {
	for l := s.Lb; l < s.Ub; l++ {
		cur := s.Next(action, l)
		steps := 1
		for !cur.IsTerminal() {
			a, found := actionTab[cur]
			if !found {
				return 0, false
			}
			cur = cur.Next(a, l)
			steps++
		}
		total += steps
	}
	return total, true
}

// selectAction picks one action among those achieving value best.
// actions/values are the parallel admissible slices from the finder.
//
// TieBreakMedian picks the middle tied floor. TieBreakTotal picks the
// tied floor with the minimum totalAt; a tie whose simulation cannot
// complete ranks last, so a momentarily stale entry only postpones the
// refinement to a later scan.
func selectAction(s State, actions, values []int, best int, rule TieBreakRule, actionTab map[State]int) int {
	ties := make([]int, 0, len(actions))
	for i, v := range values {
		if v == best {
			ties = append(ties, actions[i])
		}
	}

	if rule != TieBreakTotal {
		return ties[len(ties)>>1]
	}

	chosen := ties[0]
	bestTotal := -1
	for _, a := range ties {
		total, ok := totalAt(s, a, actionTab)
		if !ok {
			continue
		}
		if bestTotal < 0 || total < bestTotal {
			bestTotal = total
			chosen = a
		}
	}
	return chosen
}

// argmin returns the index of the first minimal element of v.
// v must be non-empty.
func argmin(v []int) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}
