package callbranch

import (
	"fmt"

	"varbench/internal/engine"
	"varbench/internal/schedule"
	"varbench/internal/timing"
	"varbench/internal/verify"
)

type variant struct {
	name string
	desc string
	fn   func(x uint32) uint32
}

var variants = []variant{
	{"calls", "square(add_ten(double(x))) via non-inlined calls", ProcessCalls},
	{"inline", "Same arithmetic in one function body", ProcessInline},
}

// Runner is the call-vs-branch payload. One trial processes `size`
// seeded inputs and folds the outputs into a checksum so the calls
// cannot be optimized away.
type Runner struct{}

func (Runner) Name() string { return "call_vs_branch" }
func (Runner) Category() string { return "control_flow" }
func (Runner) Description() string {
	return "Chained function calls versus inlined arithmetic"
}

func (Runner) VariantNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

func (Runner) Variants(size int, seed uint64) []engine.Variant {
	rng := schedule.NewRNG(seed)
	inputs := make([]uint32, size)
	for i := range inputs {
		inputs[i] = uint32(rng.Next() >> 32)
	}

	out := make([]engine.Variant, 0, len(variants))
	for _, v := range variants {
		fn := v.fn
		out = append(out, engine.NewVariant(v.name, v.desc, func() (timing.Measurement, float64, bool) {
			var sum uint32
			start := timing.Now()
			for _, x := range inputs {
				sum += fn(x)
			}
			elapsed := timing.Elapsed(start)
			return elapsed, float64(sum), true
		}))
	}
	return out
}

// Verify compares the variants exactly over uint32 boundary values and
// a seeded sample; the outputs are deterministic integers, so any
// difference is a failure.
func (Runner) Verify() error {
	inputs := []uint32{0, 1, 2, 10, 0xFF, 0xFFFF, 0x10000, 0x7FFFFFFF, 0xFFFFFFFF}
	rng := schedule.NewRNG(0xca11)
	for i := 0; i < 64; i++ {
		inputs = append(inputs, uint32(rng.Next()>>32))
	}

	for _, x := range inputs {
		expected := ProcessCalls(x)
		for _, v := range variants[1:] {
			input := fmt.Sprintf("x=%d", x)
			if err := verify.Exact(v.name, input, expected, v.fn(x)); err != nil {
				return err
			}
		}
	}
	return nil
}
