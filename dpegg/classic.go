package dpegg

// ClassicLimit returns the minimal worst-case number of drops needed to
// localize the threshold among floors floors with an egg budget of eggs,
// via the classical reachability recurrence
//
//	reach(d, e) = 1 + reach(d-1, e-1) + reach(d-1, e)
//
// where reach(d, e) is the widest range distinguishable with d drops
// and e eggs. The answer is the smallest d whose reach covers the
// range. Independent of the value/action tables; used purely as a
// cross-check oracle against the table's declared optimum.
//
// Returns -1 if no d ≤ floors suffices, which cannot happen for
// eggs ≥ 1 (linear search always covers the range in floors drops).
//
// Complexity: O(floors · eggs) time and space.
func ClassicLimit(floors, eggs int) int {
	// reach[d][e], rows d = 0..floors, cols e = 0..eggs, zero-valued
	// borders (no drops, or no eggs, distinguish nothing).
	reach := make([][]int, floors+1)
	for d := range reach {
		reach[d] = make([]int, eggs+1)
	}
	for d := 1; d <= floors; d++ {
		for e := 1; e <= eggs; e++ {
			n := 1 + reach[d-1][e-1] + reach[d-1][e]
			if n >= floors {
				return d
			}
			reach[d][e] = n
		}
	}
	return -1
}
