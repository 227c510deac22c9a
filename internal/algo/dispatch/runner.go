package dispatch

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
	fn   func(opcode uint8, value uint32) uint32
}

var variants = []variant{
	{"if-chain", "Sequential if-else comparisons", IfChain},
	{"switch", "Dense switch, jump-table lowering", Switch},
	{"table", "Multiplier lookup array", Table},
}

// Runner is the dispatch payload. One trial dispatches `size` seeded
// (opcode, value) pairs; opcodes are drawn from [0, 10) so the invalid
// path is exercised too.
type Runner struct{}

func (Runner) Name() string { return "dispatch" }
func (Runner) Category() string { return "control_flow" }
func (Runner) Description() string {
	return "Opcode dispatch via if-chain, switch and lookup table"
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
	opcodes := make([]uint8, size)
	values := make([]uint32, size)
	for i := range opcodes {
		opcodes[i] = uint8(rng.Uint32N(10))
		values[i] = uint32(rng.Next() >> 32)
	}

	out := make([]engine.Variant, 0, len(variants))
	for _, v := range variants {
		fn := v.fn
		out = append(out, engine.NewVariant(v.name, v.desc, func() (timing.Measurement, float64, bool) {
			var sum uint32
			start := timing.Now()
			for i := range opcodes {
				sum += fn(opcodes[i], values[i])
			}
			elapsed := timing.Elapsed(start)
			return elapsed, float64(sum), true
		}))
	}
	return out
}

// Verify compares all variants exactly over the entire opcode space,
// valid and invalid, at boundary values.
func (Runner) Verify() error {
	values := []uint32{0, 1, 12345, 0x7FFFFFFF, 0xFFFFFFFF}

	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		for _, value := range values {
			expected := IfChain(opcode, value)
			for _, v := range variants[1:] {
				input := fmt.Sprintf("opcode=%d value=%d", opcode, value)
				if err := verify.Exact(v.name, input, expected, v.fn(opcode, value)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
