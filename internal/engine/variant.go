// Package engine runs benchmark variants: warmup, seeded shuffled
// scheduling across variants and repetitions, per-task or global CPU
// pinning, and collection of raw measurements into per-variant series.
package engine

import "varbench/internal/timing"

// Variant is one implementation under test. Implementations are
// immutable once constructed and owned by their group for one run.
type Variant interface {
	Name() string
	Description() string
	// RunTrial executes exactly one measured trial. Timing happens
	// inside the trial so call dispatch overhead stays out of the
	// measurement. The float64 is an optional representative result,
	// used for display and cross-variant comparison, not statistics.
	RunTrial() (m timing.Measurement, result float64, hasResult bool)
}

// TrialFunc is the body of a single trial.
type TrialFunc func() (m timing.Measurement, result float64, hasResult bool)

type variantFunc struct {
	name  string
	desc  string
	trial TrialFunc
}

// NewVariant adapts a trial closure into a Variant.
func NewVariant(name, desc string, trial TrialFunc) Variant {
	return &variantFunc{name: name, desc: desc, trial: trial}
}

func (v *variantFunc) Name() string { return v.name }
func (v *variantFunc) Description() string { return v.desc }
func (v *variantFunc) RunTrial() (timing.Measurement, float64, bool) {
	return v.trial()
}
