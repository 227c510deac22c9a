// Package stats turns raw per-trial measurements into summary
// statistics, with optional symmetric outlier trimming.
package stats

import (
	"math"
	"sort"
	"time"

	"varbench/internal/timing"
)

// Summary holds aggregated timing statistics for one variant. All
// fields carry nanosecond-equivalent values; with the cycle backend the
// durations hold dimensionless tick counts.
type Summary struct {
	Mean   time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
	StdDev time.Duration
	// Count is the number of samples the statistics were computed
	// over, after any trimming.
	Count int
}

// minSamplesForTrim: trimming fewer samples than this would remove real
// signal, not outliers.
const minSamplesForTrim = 10

// trimPerSide returns how many samples to drop from each end of a
// sorted sample list of length n: 0.5% of n rounded up, never more
// than a quarter of the samples, and never so many that nothing
// remains.
func trimPerSide(n int) int {
	t := (n*5 + 999) / 1000
	if t > n/4 {
		t = n / 4
	}
	if n-2*t < 1 {
		t = (n - 1) / 2
	}
	return t
}

// Aggregate computes summary statistics over raw measurements. With
// filterOutliers set and more than ten samples, a symmetric fraction of
// the sorted extremes is discarded first. Empty input yields the zero
// Summary so degenerate variants still render cleanly.
func Aggregate(samples []timing.Measurement, filterOutliers bool) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	ns := make([]uint64, len(samples))
	for i, m := range samples {
		ns[i] = timing.ToNanos(m)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })

	if filterOutliers && len(ns) > minSamplesForTrim {
		t := trimPerSide(len(ns))
		ns = ns[t : len(ns)-t]
	}

	n := len(ns)
	var total uint64
	for _, v := range ns {
		total += v
	}
	mean := total / uint64(n)

	return Summary{
		Mean:   time.Duration(mean),
		Median: time.Duration(ns[(n-1)/2]),
		Min:    time.Duration(ns[0]),
		Max:    time.Duration(ns[n-1]),
		StdDev: stdDev(ns, mean),
		Count:  n,
	}
}

// stdDev computes the sample standard deviation (N-1 divisor).
func stdDev(ns []uint64, mean uint64) time.Duration {
	if len(ns) < 2 {
		return 0
	}
	meanF := float64(mean)
	var variance float64
	for _, v := range ns {
		d := float64(v) - meanF
		variance += d * d
	}
	variance /= float64(len(ns) - 1)
	return time.Duration(math.Sqrt(variance))
}
