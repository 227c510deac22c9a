// Package schedule builds and shuffles the benchmark task list.
//
// Both the shuffle and synthetic input generation are driven by a small
// linear-congruential generator so a run is fully determined by its
// seed: same seed, same task order, same input data.
package schedule

import "time"

// RNG is a 64-bit linear-congruential generator. It is not a
// statistical-quality source; it only has to be fast, allocation-free
// and exactly reproducible.
type RNG struct {
	state uint64
}

// NewRNG returns a generator seeded with the given state.
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Next advances the generator and returns the next 64-bit value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1
	return r.state
}

// Float32Range returns a float32 in [-1, 1), built from the high bits
// which have the longest period in an LCG.
func (r *RNG) Float32Range() float32 {
	n := r.Next()
	return float32(n>>40)/float32(uint64(1)<<24)*2 - 1
}

// Uint32N returns a uint32 in [0, max). max must be positive.
func (r *RNG) Uint32N(max uint32) uint32 {
	return uint32(r.Next()>>32) % max
}

// TimeSeed derives a seed from the current time for runs where the
// caller supplied none. The effective seed is always reported so the
// run can be reproduced later.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
