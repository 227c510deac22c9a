package xoroshiro

import (
	"fmt"

	"varbench/internal/engine"
	"varbench/internal/timing"
	"varbench/internal/verify"
)

// minSize: below this the whole batch is too fast to time per call and
// the numbers are noise. Skipped sizes still render as an empty group.
const minSize = 1024

type variant struct {
	name string
	desc string
	fn   func(s *State, n int) uint64
}

var variants = []variant{
	{"original", "Step call per output, pointer state", Original},
	{"local-state", "State hoisted into locals for the batch", LocalState},
	{"unrolled4", "4 outputs per loop iteration, local state", Unrolled4},
}

// Runner is the xoroshiro128++ payload. One trial generates `size`
// outputs, so the measurement amortizes per-output cost over a batch.
type Runner struct{}

func (Runner) Name() string { return "xoroshiro128++" }
func (Runner) Category() string { return "random" }
func (Runner) Description() string {
	return "Xoroshiro128++ pseudo-random number generator"
}

func (Runner) VariantNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

func (Runner) Variants(size int, seed uint64) []engine.Variant {
	if size < minSize {
		return nil
	}

	out := make([]engine.Variant, 0, len(variants))
	for _, v := range variants {
		fn := v.fn
		// Each variant owns generator state seeded identically, so
		// result samples are comparable across variants.
		state := &State{Lo: seed, Hi: seed * 0xDEADBEEF}
		out = append(out, engine.NewVariant(v.name, v.desc, func() (timing.Measurement, float64, bool) {
			start := timing.Now()
			last := fn(state, size)
			elapsed := timing.Elapsed(start)
			return elapsed, float64(last), true
		}))
	}
	return out
}

// Verify checks the documented first output for the (1, 0) state, then
// bitwise-compares full output sequences across variants, including
// batch sizes that exercise the unroll cleanup path.
func (Runner) Verify() error {
	first := State{Lo: 1, Hi: 0}
	if got := Step(&first); got != 131073 {
		return verify.Exact("original", "state=(1,0)", uint64(131073), got)
	}

	const seedLo, seedHi = 0xdeadbeef, 0xcafebab

	ref := State{Lo: seedLo, Hi: seedHi}
	expected := make([]uint64, 100)
	for i := range expected {
		expected[i] = Step(&ref)
	}

	for _, v := range variants {
		// Batch sizes 0, 1 and a non-multiple-of-4 chunk cover the
		// degenerate and remainder paths; together they consume the
		// same 100-output sequence.
		state := State{Lo: seedLo, Hi: seedHi}
		if got := v.fn(&state, 0); got != 0 {
			return verify.Exact(v.name, "n=0", uint64(0), got)
		}

		consumed := 0
		for _, n := range []int{1, 7, 92} {
			got := v.fn(&state, n)
			consumed += n
			want := expected[consumed-1]
			input := fmt.Sprintf("output #%d", consumed-1)
			if err := verify.Exact(v.name, input, want, got); err != nil {
				return err
			}
		}
		if state.Lo != ref.Lo || state.Hi != ref.Hi {
			return verify.Exact(v.name, "final state",
				fmt.Sprintf("(%d,%d)", ref.Lo, ref.Hi),
				fmt.Sprintf("(%d,%d)", state.Lo, state.Hi))
		}
	}
	return nil
}
