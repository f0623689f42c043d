// Command dpegg computes and verifies optimal egg-drop decision
// policies, and prints the full report: verified worst cases, means,
// histograms, per-state decision landscapes and execution traces.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
