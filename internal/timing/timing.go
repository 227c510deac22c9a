// Package timing is the measurement primitive for the benchmark engine.
//
// A Measurement is either a CPU cycle count or a monotonic-clock reading
// in nanoseconds; the backend is fixed at build time with the "cycles"
// build tag and never changes within a process. Cycle counts are treated
// as dimensionless ticks for reporting, not rescaled to wall time.
package timing

import "time"

// Measurement is a single counter reading. The zero value is a valid
// "no time elapsed" measurement.
type Measurement uint64

// Elapsed returns the delta between a previous reading and now,
// saturating at zero if the counter appears to have gone backward
// (possible with cross-core TSC reads).
func Elapsed(start Measurement) Measurement {
	n := Now()
	if n < start {
		return 0
	}
	return n - start
}

// ToNanos converts a measurement to a nanosecond-equivalent integer for
// statistics. With the cycle backend the value is the raw tick count.
func ToNanos(m Measurement) uint64 {
	return uint64(m)
}

// ToDuration exposes a measurement as a time.Duration holding its
// nanosecond-equivalent value, for formatting and aggregation.
func ToDuration(m Measurement) time.Duration {
	return time.Duration(m)
}
