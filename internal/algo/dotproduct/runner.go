package dotproduct

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
	fn   func(a, b []float32) float32
}

// original is listed first: it is the reference for verification and
// the speedup baseline in the report.
var variants = []variant{
	{"original", "Plain indexed loop, serial accumulator", Original},
	{"unrolled4", "4x unroll, 4 independent accumulators", Unrolled4},
	{"unrolled8", "8x unroll, 8 independent accumulators", Unrolled8},
}

// Runner is the dot-product payload.
type Runner struct{}

func (Runner) Name() string { return "dot_product" }
func (Runner) Category() string { return "math" }
func (Runner) Description() string {
	return "Computes the sum of products of corresponding vector elements"
}

func (Runner) VariantNames() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

func (Runner) Variants(size int, seed uint64) []engine.Variant {
	// All variants share the same seeded inputs so their result
	// samples are directly comparable.
	rng := schedule.NewRNG(seed)
	a := make([]float32, size)
	b := make([]float32, size)
	for i := range a {
		a[i] = rng.Float32Range()
	}
	for i := range b {
		b[i] = rng.Float32Range()
	}

	out := make([]engine.Variant, 0, len(variants))
	for _, v := range variants {
		fn := v.fn
		out = append(out, engine.NewVariant(v.name, v.desc, func() (timing.Measurement, float64, bool) {
			start := timing.Now()
			r := fn(a, b)
			elapsed := timing.Elapsed(start)
			return elapsed, float64(r), true
		}))
	}
	return out
}

// Verify checks every variant against Original over fixed inputs,
// including the degenerate and misaligned sizes where unrolled cleanup
// paths go wrong. Accumulation order differs between variants, so
// comparison uses the absolute float tolerance.
func (Runner) Verify() error {
	known := struct {
		a, b []float32
		want float32
	}{
		a:    []float32{1, 2, 3, 4},
		b:    []float32{5, 6, 7, 8},
		want: 70,
	}
	if got := Original(known.a, known.b); got != known.want {
		return verify.Exact("original", "[1 2 3 4]·[5 6 7 8]", known.want, got)
	}

	// Sizes: empty, single, below/at/above unroll widths, and
	// non-power-of-two lengths exercising remainder loops.
	sizes := []int{0, 1, 3, 4, 7, 8, 9, 31, 1023, 1025}
	rng := schedule.NewRNG(0x5eed)

	for _, size := range sizes {
		a := make([]float32, size)
		b := make([]float32, size)
		for i := range a {
			a[i] = rng.Float32Range()
			b[i] = rng.Float32Range()
		}
		expected := float64(Original(a, b))

		for _, v := range variants[1:] {
			got := float64(v.fn(a, b))
			input := fmt.Sprintf("size=%d", size)
			if err := verify.Float(v.name, input, expected, got, verify.Epsilon); err != nil {
				return err
			}
		}
	}
	return nil
}
