//go:build cycles && amd64

package timing

// Cycle-counter backend for x86-64. readCycles executes RDTSC between a
// pair of LFENCE instructions so the read cannot be reordered into the
// code being measured.

// readCycles is implemented in cycles_amd64.s.
func readCycles() uint64

// Now returns the current timestamp-counter reading.
func Now() Measurement {
	return Measurement(readCycles())
}

// UnitName reports the unit measurements are expressed in.
func UnitName() string { return "cycles" }

// CycleBackend reports whether the cycle-counter backend is compiled in.
const CycleBackend = true
