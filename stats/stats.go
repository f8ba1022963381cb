// Package stats reduces timing samples to summary statistics.
package stats

import (
	"math"
	"sort"
)

// Summary holds the summary statistics of a timing sample, in seconds.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Stdev  float64 `json:"stdev"`
}

// Summarize computes summary statistics over a timing sample.
// Stdev is the sample standard deviation (N-1 denominator), 0 when the
// sample has a single element. The input slice is not modified.
//
// Summarize panics on an empty sample; callers must never pass one.
func Summarize(sample []float64) Summary {
	if len(sample) == 0 {
		panic("stats: Summarize called with empty sample")
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	mean := sum / float64(len(sorted))

	return Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median(sorted),
		Stdev:  stdev(sorted, mean),
	}
}

// median expects a sorted slice. For even lengths it averages the two
// middle order statistics.
func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2

	if n%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

func stdev(sample []float64, mean float64) float64 {
	if len(sample) <= 1 {
		return 0
	}

	var sq float64
	for _, v := range sample {
		d := v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(sample)-1))
}
