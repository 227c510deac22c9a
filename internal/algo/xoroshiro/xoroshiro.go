// Package xoroshiro benchmarks xoroshiro128++ generator
// implementations. Every variant must produce the bitwise-identical
// output sequence; only the code shape differs.
package xoroshiro

import "math/bits"

// State is the 128-bit generator state.
type State struct {
	Lo uint64
	Hi uint64
}

// Step advances the state once and returns the next output:
// rotl(s0+s1, 17) + s0.
func Step(s *State) uint64 {
	s0 := s.Lo
	s1 := s.Hi

	result := bits.RotateLeft64(s0+s1, 17) + s0

	s1 ^= s0
	s.Lo = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
	s.Hi = bits.RotateLeft64(s1, 28)

	return result
}

// Original generates n outputs by calling Step in a plain loop,
// returning the last output. n == 0 returns 0.
func Original(s *State, n int) uint64 {
	var last uint64
	for i := 0; i < n; i++ {
		last = Step(s)
	}
	return last
}

// LocalState hoists the state into locals for the whole batch and
// writes it back once, removing the per-call pointer loads and stores.
func LocalState(s *State, n int) uint64 {
	s0 := s.Lo
	s1 := s.Hi
	var last uint64

	for i := 0; i < n; i++ {
		last = bits.RotateLeft64(s0+s1, 17) + s0
		t := s1 ^ s0
		s0 = bits.RotateLeft64(s0, 49) ^ t ^ (t << 21)
		s1 = bits.RotateLeft64(t, 28)
	}

	s.Lo = s0
	s.Hi = s1
	return last
}

// Unrolled4 generates four outputs per iteration over local state. The
// generator is strictly serial, so the unroll targets loop overhead
// rather than instruction-level parallelism.
func Unrolled4(s *State, n int) uint64 {
	s0 := s.Lo
	s1 := s.Hi
	var last uint64

	step := func() uint64 {
		r := bits.RotateLeft64(s0+s1, 17) + s0
		t := s1 ^ s0
		s0 = bits.RotateLeft64(s0, 49) ^ t ^ (t << 21)
		s1 = bits.RotateLeft64(t, 28)
		return r
	}

	chunks := n / 4
	for i := 0; i < chunks; i++ {
		step()
		step()
		step()
		last = step()
	}
	for i := chunks * 4; i < n; i++ {
		last = step()
	}

	s.Lo = s0
	s.Hi = s1
	return last
}
