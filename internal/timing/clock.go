//go:build !cycles

package timing

import "time"

// Wall-clock backend. Readings are monotonic nanoseconds relative to
// process start, so Measurement arithmetic never touches the realtime
// clock and a reading is a single runtime call with no allocation.

var processStart = time.Now()

// Now returns the current monotonic reading.
func Now() Measurement {
	return Measurement(time.Since(processStart))
}

// UnitName reports the unit measurements are expressed in.
func UnitName() string { return "ns" }

// CycleBackend reports whether the cycle-counter backend is compiled in.
const CycleBackend = false
