package dpegg

// Verification aggregates the outcome of exhaustively simulating a
// policy for every possible threshold of a sub-instance.
type Verification struct {
	// MaxDrops is the realized worst-case drop count across all
	// thresholds. On a consistent policy it equals the declared
	// table value for the sub-instance's initial state.
	MaxDrops int

	// MeanDrops is the mean drop count, thresholds weighted uniformly.
	MeanDrops float64

	// Outcomes maps a realized drop count to the number of thresholds
	// producing it.
	Outcomes map[int]int

	// DropCounts[f] is the number of times floor f was dropped from
	// across all simulated runs; index 0 is never used (no drop can
	// target the range's lower bound).
	DropCounts []int
}

// Check verifies the policy for the sub-instance (floors, eggs): it
// runs the policy for every threshold in [0, floors], confirms the
// realized worst case equals the declared table value, and aggregates
// the mean plus the outcome and floor-usage histograms.
//
// On a worst-case disagreement the Verification is still fully
// populated and the error is ErrPolicyMismatch, so callers can report
// the discrepancy before halting. Other errors: ErrUnknownState if the
// sub-instance's initial state has no value entry, ErrIncompletePolicy
// from the underlying runs.
func (p *Policy) Check(floors, eggs int) (Verification, error) {
	nominal, ok := p.value[State{Eggs: eggs, Lb: 0, Ub: floors + 1}]
	if !ok {
		return Verification{}, ErrUnknownState
	}

	res := Verification{
		Outcomes:   make(map[int]int),
		DropCounts: make([]int, floors+1),
	}

	sum := 0
	for l := 0; l <= floors; l++ {
		steps, trace, err := p.RunInstance(floors, eggs, l)
		if err != nil {
			return Verification{}, err
		}
		res.Outcomes[steps]++
		sum += steps
		if steps > res.MaxDrops {
			res.MaxDrops = steps
		}
		for _, a := range trace {
			res.DropCounts[a]++
		}
	}
	res.MeanDrops = float64(sum) / float64(floors+1)

	if res.MaxDrops != nominal {
		return res, ErrPolicyMismatch
	}
	return res, nil
}
