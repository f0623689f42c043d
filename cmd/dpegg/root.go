package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/eggdrop/dpegg"
	"github.com/spf13/cobra"
)

var (
	flagTieBreak bool
	flagFullScan bool
	flagNoTraces bool
)

var rootCmd = &cobra.Command{
	Use:   "dpegg F E",
	Short: "Optimal egg-drop decision policies by brute-force dynamic programming",
	Long: `dpegg computes the optimal dropping policy for F floors and E eggs:
the minimum worst-case number of drops to localize the unknown threshold
floor exactly, plus the concrete floor to drop from at every reachable
state. The policy is then verified by simulating every possible
threshold, and the report includes per-threshold statistics that
distinguish policies sharing the same worst case.

With E = 1 the policy degenerates to linear search, with ample eggs to
binary search; the in-between budgets are where it gets interesting.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagTieBreak, "tiebreak", false,
		"break ties by total drops across thresholds (better mean, same worst case)")
	rootCmd.Flags().BoolVar(&flagFullScan, "full-scan", false,
		"evaluate every candidate floor per state (slower, audits the unimodality assumption)")
	rootCmd.Flags().BoolVar(&flagNoTraces, "no-traces", false,
		"suppress the per-threshold execution traces")
}

func run(cmd *cobra.Command, args []string) error {
	floors, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("floor count %q: %w", args[0], err)
	}
	eggs, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("egg count %q: %w", args[1], err)
	}
	if floors < 1 || eggs < 1 {
		return errors.New("invalid input(s): F, E >= 1 required")
	}

	var opts []dpegg.Option
	if flagTieBreak {
		opts = append(opts, dpegg.WithTieBreak(dpegg.TieBreakTotal))
	}
	if flagFullScan {
		opts = append(opts, dpegg.WithFullScan())
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "required min. number of drops = %d\n", dpegg.ClassicLimit(floors, eggs))

	start := time.Now()
	p, err := dpegg.Solve(floors, eggs, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for e, n := range p.Scans {
		fmt.Fprintf(out, "%d scans at level e = %d\n", n, e+1)
	}
	for _, w := range p.Warnings {
		fmt.Fprintln(out, "warning:", w)
	}
	values, actions := p.Size()
	fmt.Fprintf(out, "value (action) table has %d (%d) entries (duration = %s)\n\n",
		values, actions, elapsed)

	// Verify level by level; a mismatch invalidates everything above it.
	drops := make([][]int, eggs+1)
	for e := 1; e <= eggs; e++ {
		res, err := p.Check(floors, e)
		if errors.Is(err, dpegg.ErrPolicyMismatch) {
			fmt.Fprintf(out, "DP solution is inconsistent (e = %d)\n", e)
			return err
		}
		if err != nil {
			return err
		}
		drops[e] = res.DropCounts

		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("--- floors F = %d, eggs E = %d ---", floors, e)))
		fmt.Fprintf(out, "min max drops = %d (optimal worst case)\n", res.MaxDrops)
		fmt.Fprintf(out, "mean drops    = %.6g (uniform limit floor)\n", res.MeanDrops)
		fmt.Fprintf(out, "drops histg.  = %s\n", histogramString(res.Outcomes, 0, res.MaxDrops))
		printDecisions(out, p, dpegg.State{Eggs: e, Lb: 0, Ub: floors + 1})
		fmt.Fprintln(out)
	}

	if err := printWorstTable(out, p, floors, eggs); err != nil {
		return err
	}
	if err := printMeanTable(out, p, floors, eggs); err != nil {
		return err
	}
	printDropTable(out, drops, floors, eggs)

	if !flagNoTraces {
		if err := printTraces(out, p, floors); err != nil {
			return err
		}
	}
	return nil
}

// printDecisions dumps the full decision landscape at state s: every
// admissible drop floor, its worst-case value, and its mean drop count
// through the frozen policy.
func printDecisions(out io.Writer, p *dpegg.Policy, s dpegg.State) {
	actions, values := p.Decisions(s)
	means := p.DecisionMeans(s, actions)

	fmt.Fprintf(out, "decision @ state %s\n", s)
	fmt.Fprintf(out, "  drops:  %s\n", joinInts(actions))
	fmt.Fprintf(out, "  values: %s\n", joinInts(values))

	parts := make([]string, len(means))
	for i, m := range means {
		parts[i] = strconv.FormatFloat(m, 'g', 6, 64)
	}
	fmt.Fprintf(out, "  means:  %s\n", strings.Join(parts, " "))
}

// printWorstTable renders the optimal worst case for every sub-instance
// f = 1..floors, e = 1..eggs.
func printWorstTable(out io.Writer, p *dpegg.Policy, floors, eggs int) error {
	t := newTable(fmt.Sprintf("--- min max drops, E = 1..%d ---", eggs), gridHeaders(eggs)...)
	for f := 1; f <= floors; f++ {
		row := []string{fmt.Sprintf("floors %3d", f)}
		for e := 1; e <= eggs; e++ {
			v, err := p.Nominal(f, e)
			if err != nil {
				return err
			}
			row = append(row, strconv.Itoa(v))
		}
		t.addRow(row...)
	}
	fmt.Fprintln(out, t.render())
	return nil
}

// printMeanTable renders the mean drop count for every sub-instance.
// Without --tiebreak this table need not be monotonic along F.
func printMeanTable(out io.Writer, p *dpegg.Policy, floors, eggs int) error {
	t := newTable(fmt.Sprintf("--- average drops, E = 1..%d ---", eggs), gridHeaders(eggs)...)
	for f := 1; f <= floors; f++ {
		row := []string{fmt.Sprintf("floors %3d", f)}
		for e := 1; e <= eggs; e++ {
			res, err := p.Check(f, e)
			if err != nil {
				return err
			}
			row = append(row, strconv.FormatFloat(res.MeanDrops, 'g', 6, 64))
		}
		t.addRow(row...)
	}
	fmt.Fprintln(out, t.render())
	return nil
}

// printDropTable renders, per floor, how often each egg budget's policy
// drops from it across all simulated thresholds.
func printDropTable(out io.Writer, drops [][]int, floors, eggs int) {
	t := newTable(fmt.Sprintf("--- drop histograms E = 1..%d (F = %d) ---", eggs, floors), gridHeaders(eggs)...)
	for f := 1; f <= floors; f++ {
		row := []string{fmt.Sprintf("floor  %3d", f)}
		for e := 1; e <= eggs; e++ {
			row = append(row, strconv.Itoa(drops[e][f]))
		}
		t.addRow(row...)
	}
	fmt.Fprintln(out, t.render())
}

// printTraces lists the exact drop sequence for every possible
// threshold under the full egg budget.
func printTraces(out io.Writer, p *dpegg.Policy, floors int) error {
	fmt.Fprintln(out, titleStyle.Render(
		fmt.Sprintf("--- optimal E = %d executions for all limit levels L ---", p.Eggs)))
	for l := 0; l <= floors; l++ {
		steps, trace, err := p.Run(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "L = %3d: %s (%d steps)\n", l, joinInts(trace), steps)
	}
	return nil
}

// histogramString renders counts for k = kmin..kmax, zeroes included.
func histogramString(h map[int]int, kmin, kmax int) string {
	parts := make([]string, 0, kmax-kmin+1)
	for k := kmin; k <= kmax; k++ {
		parts = append(parts, strconv.Itoa(h[k]))
	}
	return strings.Join(parts, " ")
}

// gridHeaders builds the shared header row of the summary tables.
func gridHeaders(eggs int) []string {
	headers := []string{""}
	for e := 1; e <= eggs; e++ {
		headers = append(headers, fmt.Sprintf("E=%d", e))
	}
	return headers
}

// joinInts renders ints space-separated.
func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
