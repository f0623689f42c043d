package dpegg

// RunInstance executes the frozen policy for the sub-instance (floors,
// eggs) against the hidden true threshold limit, starting from the
// fully-unknown state (eggs, 0, floors+1). It returns the number of
// drops needed to localize the threshold and the ordered trace of
// floors dropped from.
//
// Errors: ErrIncompletePolicy if a reachable non-terminal state has no
// action-table entry. That is a builder defect (or an instance larger
// than the one solved), never a recoverable condition.
func (p *Policy) RunInstance(floors, eggs, limit int) (steps int, trace []int, err error) {
	s := State{Eggs: eggs, Lb: 0, Ub: floors + 1}
	for !s.IsTerminal() {
		a, ok := p.action[s]
		if !ok {
			return 0, nil, ErrIncompletePolicy
		}
		s = s.Next(a, limit)
		steps++
		trace = append(trace, a)
	}
	return steps, trace, nil
}

// Run executes the policy for the solved instance (Floors, Eggs)
// against the hidden true threshold limit. See RunInstance.
func (p *Policy) Run(limit int) (steps int, trace []int, err error) {
	return p.RunInstance(p.Floors, p.Eggs, limit)
}
