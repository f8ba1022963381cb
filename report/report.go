// Package report formats benchmark results and JSON-vs-BSON comparison
// ratios into a readable summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/weiihann/bsonbench/harness"
	"github.com/weiihann/bsonbench/workload"
)

const lineWidth = 80

// Generate writes the benchmark summary: one line per workload in sorted
// name order (statistics, or an explicit FAILED marker), followed by the
// relative-performance section for every comparison pair with valid
// statistics on both sides. Pairs with a missing or failed side are
// omitted; partial data is expected, not an error.
func Generate(
	w io.Writer,
	results harness.ResultSet,
	pairs []workload.ComparisonPair,
	rows int,
) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}

	sort.Strings(names)

	rule := strings.Repeat("=", lineWidth)
	dash := strings.Repeat("-", lineWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "BENCHMARK RESULTS (%s rows)\n", groupDigits(rows))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-40s %-12s %-12s %-12s\n",
		"Benchmark", "Median (s)", "Mean (s)", "StdDev (s)")
	fmt.Fprintln(w, dash)

	for _, name := range names {
		outcome := results[name]
		if outcome.Failed() {
			fmt.Fprintf(w, "%-40s %-12s\n", name, "FAILED")

			continue
		}

		s := outcome.Stats
		fmt.Fprintf(w, "%-40s %-12.4f %-12.4f %-12.4f\n",
			name, s.Median, s.Mean, s.Stdev)
	}

	fmt.Fprintln(w, rule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMPARISON (JSON baseline = 1.0x):")
	fmt.Fprintln(w, dash)

	for _, pair := range pairs {
		baseline, candidate, ok := pairStats(results, pair)
		if !ok {
			continue
		}

		ratio := candidate / baseline

		faster := "faster"
		if ratio >= 1.0 {
			faster = "slower"
		}

		fmt.Fprintf(w, "%-30s JSON: %.4fs  BSON: %.4fs  (%.2fx, BSON is %.1f%% %s)\n",
			pair.Label, baseline, candidate, ratio,
			math.Abs(1-ratio)*100, faster)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)

	return nil
}

// GenerateJSON writes the raw result set as indented JSON.
func GenerateJSON(w io.Writer, results harness.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// pairStats returns the baseline and candidate medians for a pair, and
// whether a ratio is computable: both sides present with valid stats and
// a positive baseline median.
func pairStats(
	results harness.ResultSet,
	pair workload.ComparisonPair,
) (baseline, candidate float64, ok bool) {
	b, bOK := results[pair.Baseline]
	c, cOK := results[pair.Candidate]

	if !bOK || !cOK || b.Failed() || c.Failed() {
		return 0, 0, false
	}

	if b.Stats.Median <= 0 || c.Stats.Median <= 0 {
		return 0, 0, false
	}

	return b.Stats.Median, c.Stats.Median, true
}

// groupDigits renders n with thousands separators, e.g. 100000 ->
// "100,000".
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + groupDigits(-n)
	}

	if len(s) <= 3 {
		return s
	}

	var b strings.Builder

	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(s[i : i+3])
	}

	return b.String()
}
