package xoroshiro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepKnownValue(t *testing.T) {
	// First output of xoroshiro128++ from state (1, 0):
	// rotl(1+0, 17) + 1 = 2^17 + 1.
	s := State{Lo: 1, Hi: 0}
	assert.Equal(t, uint64(131073), Step(&s))
}

func TestVariantsProduceIdenticalSequences(t *testing.T) {
	const n = 1000
	ref := State{Lo: 0xdeadbeef, Hi: 0xcafebab}
	expected := make([]uint64, n)
	for i := range expected {
		expected[i] = Step(&ref)
	}

	variants := []struct {
		name string
		fn   func(s *State, n int) uint64
	}{
		{"original", Original},
		{"local-state", LocalState},
		{"unrolled4", Unrolled4},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			s := State{Lo: 0xdeadbeef, Hi: 0xcafebab}
			// Batch sizes cover the unroll remainder paths and sum to n.
			consumed := 0
			for _, batch := range []int{1, 3, 4, 92, 900} {
				last := v.fn(&s, batch)
				consumed += batch
				require.Equal(t, expected[consumed-1], last, "output #%d", consumed-1)
			}
			require.Equal(t, n, consumed)
			assert.Equal(t, ref, s, "final generator state must match the reference walk")
		})
	}
}

func TestZeroBatch(t *testing.T) {
	for _, fn := range []func(s *State, n int) uint64{Original, LocalState, Unrolled4} {
		s := State{Lo: 7, Hi: 11}
		assert.Equal(t, uint64(0), fn(&s, 0))
		assert.Equal(t, State{Lo: 7, Hi: 11}, s, "zero batch must not advance the state")
	}
}

func TestRunnerVerify(t *testing.T) {
	assert.NoError(t, Runner{}.Verify())
}

func TestRunnerSkipsSmallSizes(t *testing.T) {
	r := Runner{}
	assert.Nil(t, r.Variants(512, 1), "below the minimum batch size")
	assert.Nil(t, r.Variants(0, 1))
	assert.Len(t, r.Variants(1024, 1), 3)
	assert.Len(t, r.Variants(4096, 1), 3)
}

func TestRunnerResultSamplesAgree(t *testing.T) {
	vs := Runner{}.Variants(2048, 99)
	require.Len(t, vs, 3)

	_, ref, ok := vs[0].RunTrial()
	require.True(t, ok)
	for _, v := range vs[1:] {
		_, got, ok := v.RunTrial()
		require.True(t, ok)
		assert.Equal(t, ref, got, "variant %s", v.Name())
	}
}
