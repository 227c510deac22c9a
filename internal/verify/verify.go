// Package verify compares variant outputs against a reference variant.
//
// Integer and PRNG outputs must match exactly; floating-point
// accumulations are allowed an absolute tolerance because scalar,
// unrolled and vectorized reductions sum in different orders. A variant
// that fails verification must not have its timings presented as
// comparable, so verification runs before any timing table is printed.
package verify

import "fmt"

// Epsilon is the absolute tolerance for single-precision accumulation.
// Fixed regardless of magnitude, matching the behavior the comparison
// tables were originally calibrated against.
const Epsilon = 1e-4

// Mismatch describes the first diverging output of a failing variant.
type Mismatch struct {
	Variant  string
	Input    string
	Expected string
	Actual   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("variant %q failed for input %s: expected %s, got %s",
		m.Variant, m.Input, m.Expected, m.Actual)
}

// Exact checks a deterministic output for exact equality, failing fast
// with the offending input and both values.
func Exact[T comparable](variant, input string, expected, actual T) error {
	if expected != actual {
		return &Mismatch{
			Variant:  variant,
			Input:    input,
			Expected: fmt.Sprintf("%v", expected),
			Actual:   fmt.Sprintf("%v", actual),
		}
	}
	return nil
}

// Float checks a floating-point output against the reference within an
// absolute tolerance.
func Float(variant, input string, expected, actual, epsilon float64) error {
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	if diff > epsilon {
		return &Mismatch{
			Variant:  variant,
			Input:    input,
			Expected: fmt.Sprintf("%v", expected),
			Actual:   fmt.Sprintf("%v (diff %v)", actual, diff),
		}
	}
	return nil
}
