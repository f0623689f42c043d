package dpegg_test

import (
	"testing"

	"github.com/katalvlaran/eggdrop/dpegg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTieBreak_SameWorstCase verifies that the tie-break rule is purely
// secondary: both rules declare the identical worst-case optimum for
// every sub-instance.
func TestTieBreak_SameWorstCase(t *testing.T) {
	const floors, eggs = 15, 3

	median, err := dpegg.Solve(floors, eggs)
	require.NoError(t, err)
	total, err := dpegg.Solve(floors, eggs, dpegg.WithTieBreak(dpegg.TieBreakTotal))
	require.NoError(t, err)

	for f := 1; f <= floors; f++ {
		for e := 1; e <= eggs; e++ {
			vm, err := median.Nominal(f, e)
			require.NoError(t, err)
			vt, err := total.Nominal(f, e)
			require.NoError(t, err)
			assert.Equal(t, vm, vt, "F=%d E=%d", f, e)
		}
	}
}

// TestTieBreak_MedianPick verifies the positional rule: the stored
// action is the middle element of the tied-optimal floors.
func TestTieBreak_MedianPick(t *testing.T) {
	const floors, eggs = 12, 2

	p, err := dpegg.Solve(floors, eggs)
	require.NoError(t, err)

	root := dpegg.State{Eggs: eggs, Lb: 0, Ub: floors + 1}
	actions, values := p.Decisions(root)
	require.NotEmpty(t, actions)

	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	var ties []int
	for i, v := range values {
		if v == best {
			ties = append(ties, actions[i])
		}
	}

	chosen, ok := p.Action(root)
	require.True(t, ok)
	assert.Equal(t, ties[len(ties)>>1], chosen)
}

// TestTieBreak_TotalPick verifies the secondary-objective rule: among
// the tied-optimal floors, the stored action realizes the minimum mean
// drop count when simulated through the frozen tables.
func TestTieBreak_TotalPick(t *testing.T) {
	const floors, eggs = 12, 2

	p, err := dpegg.Solve(floors, eggs, dpegg.WithTieBreak(dpegg.TieBreakTotal))
	require.NoError(t, err)

	root := dpegg.State{Eggs: eggs, Lb: 0, Ub: floors + 1}
	actions, values := p.Decisions(root)
	require.NotEmpty(t, actions)

	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	var ties []int
	for i, v := range values {
		if v == best {
			ties = append(ties, actions[i])
		}
	}
	means := p.DecisionMeans(root, ties)

	chosen, ok := p.Action(root)
	require.True(t, ok)

	var chosenMean float64
	bestMean := means[0]
	for i, a := range ties {
		if means[i] < bestMean {
			bestMean = means[i]
		}
		if a == chosen {
			chosenMean = means[i]
		}
	}
	assert.Contains(t, ties, chosen)
	assert.InDelta(t, bestMean, chosenMean, 1e-12, "chosen action must realize the minimal mean among ties")
}

// TestDecisionMeans_Width verifies shape and the trivial one-action
// case: with one egg the single admissible drop's mean is fully
// determined by the linear continuation.
func TestDecisionMeans_Width(t *testing.T) {
	p, err := dpegg.Solve(5, 1)
	require.NoError(t, err)

	root := dpegg.State{Eggs: 1, Lb: 0, Ub: 6}
	actions, _ := p.Decisions(root)
	require.Equal(t, []int{1}, actions)

	means := p.DecisionMeans(root, actions)
	require.Len(t, means, 1)
	// Linear search over 6 thresholds: drops 1,2,3,4,5,5 → mean 20/6.
	assert.InDelta(t, 20.0/6.0, means[0], 1e-12)
}
