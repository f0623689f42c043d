package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Bound flag values survive Execute calls; reset between runs.
	flagTieBreak, flagFullScan, flagNoTraces = false, false, false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// TestRun_ClassicTenFloors checks the report's headline numbers for the
// classic 10-floor, 2-egg instance.
func TestRun_ClassicTenFloors(t *testing.T) {
	out, err := execute(t, "10", "2", "--no-traces")
	require.NoError(t, err)

	assert.Contains(t, out, "required min. number of drops = 4")
	assert.Contains(t, out, "min max drops = 4 (optimal worst case)")
	assert.Contains(t, out, "min max drops = 10 (optimal worst case)", "the E=1 level is reported too")
	assert.NotContains(t, out, "warning:")
	assert.NotContains(t, out, "executions for all limit levels", "--no-traces must drop the trace section")
}

// TestRun_Traces checks the per-threshold execution listing.
func TestRun_Traces(t *testing.T) {
	out, err := execute(t, "4", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "L =   0: 1 (1 steps)")
	assert.Contains(t, out, "L =   3: 1 2 3 4 (4 steps)")
	assert.Contains(t, out, "L =   4: 1 2 3 4 (4 steps)")
}

// TestRun_TieBreakFlag ensures the flag is accepted and the report
// still verifies cleanly.
func TestRun_TieBreakFlag(t *testing.T) {
	out, err := execute(t, "12", "2", "--tiebreak", "--full-scan", "--no-traces")
	require.NoError(t, err)
	assert.Contains(t, out, "required min. number of drops = 5")
	assert.NotContains(t, out, "inconsistent")
}

// TestRun_InvalidInput verifies rejection before the core runs.
func TestRun_InvalidInput(t *testing.T) {
	_, err := execute(t, "0", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "F, E >= 1 required")

	_, err = execute(t, "10", "x")
	require.Error(t, err)

	_, err = execute(t, "10", "2", "--bogus")
	require.Error(t, err, "unknown flags are rejected")
}
