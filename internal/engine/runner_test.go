package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varbench/internal/affinity"
	"varbench/internal/timing"
)

// countingVariant records every trial call so tests can check warmup
// accounting, execution order and result propagation.
type countingVariant struct {
	name   string
	calls  int
	order  *[]string
	result func(call int) (float64, bool)
}

func (v *countingVariant) Name() string { return v.name }
func (v *countingVariant) Description() string { return v.name }
func (v *countingVariant) RunTrial() (timing.Measurement, float64, bool) {
	v.calls++
	if v.order != nil {
		*v.order = append(*v.order, v.name)
	}
	if v.result != nil {
		r, ok := v.result(v.calls)
		return timing.Measurement(v.calls), r, ok
	}
	return timing.Measurement(v.calls), 0, false
}

func TestRunCounts(t *testing.T) {
	a := &countingVariant{name: "a"}
	b := &countingVariant{name: "b"}
	c := &countingVariant{name: "c"}
	groups := []Group{
		{Algorithm: "alg1", Size: 64, Variants: []Variant{a, b}},
		{Algorithm: "alg2", Size: 256, Variants: []Variant{c}},
	}

	series, info := Run(groups, Config{Repetitions: 5, Warmup: 3, Seed: 1, HasSeed: true})

	require.Len(t, series, 3)
	for _, s := range series {
		assert.Len(t, s.Samples, 5, "variant %s", s.Variant.Name())
	}
	// Warmup trials run but are never recorded.
	assert.Equal(t, 8, a.calls)
	assert.Equal(t, 8, b.calls)
	assert.Equal(t, 8, c.calls)
	assert.Equal(t, 15, info.TotalTasks)
	assert.Equal(t, uint64(1), info.Seed)
}

func TestRunDeterministicOrder(t *testing.T) {
	run := func(seed uint64) []string {
		var order []string
		groups := []Group{{
			Algorithm: "alg",
			Size:      64,
			Variants: []Variant{
				&countingVariant{name: "a", order: &order},
				&countingVariant{name: "b", order: &order},
				&countingVariant{name: "c", order: &order},
			},
		}}
		Run(groups, Config{Repetitions: 10, Warmup: 0, Seed: seed, HasSeed: true, Pin: PinGlobal})
		return order
	}

	first := run(42)
	second := run(42)
	require.Len(t, first, 30)
	assert.Equal(t, first, second, "same seed must reproduce the exact task order")

	other := run(43)
	assert.NotEqual(t, first, other, "different seeds should shuffle differently")
}

func TestRunInterleavesVariants(t *testing.T) {
	var order []string
	groups := []Group{{
		Algorithm: "alg",
		Size:      64,
		Variants: []Variant{
			&countingVariant{name: "a", order: &order},
			&countingVariant{name: "b", order: &order},
		},
	}}
	Run(groups, Config{Repetitions: 20, Warmup: 0, Seed: 7, HasSeed: true, Pin: PinGlobal})

	// A shuffled schedule must not degenerate into the variant-major
	// order the task list was built in.
	unshuffled := true
	for i, name := range order {
		want := "a"
		if i >= 20 {
			want = "b"
		}
		if name != want {
			unshuffled = false
			break
		}
	}
	assert.False(t, unshuffled, "schedule ran in unshuffled variant-major order")
}

func TestRunLastResultWins(t *testing.T) {
	v := &countingVariant{
		name:   "v",
		result: func(call int) (float64, bool) { return float64(call), true },
	}
	groups := []Group{{Algorithm: "alg", Size: 64, Variants: []Variant{v}}}

	series, _ := Run(groups, Config{Repetitions: 4, Warmup: 0, Seed: 1, HasSeed: true})

	require.Len(t, series, 1)
	assert.True(t, series[0].HasResult)
	assert.Equal(t, float64(4), series[0].Result)
}

func TestRunNoResult(t *testing.T) {
	v := &countingVariant{name: "v"}
	groups := []Group{{Algorithm: "alg", Size: 64, Variants: []Variant{v}}}

	series, _ := Run(groups, Config{Repetitions: 3, Warmup: 0, Seed: 1, HasSeed: true})

	require.Len(t, series, 1)
	assert.False(t, series[0].HasResult)
}

func TestRunEmptyGroups(t *testing.T) {
	// A payload may decline a size by returning no variants; the run
	// must still complete.
	groups := []Group{
		{Algorithm: "alg", Size: 16, Variants: nil},
		{Algorithm: "alg", Size: 64, Variants: []Variant{&countingVariant{name: "v"}}},
	}
	series, info := Run(groups, Config{Repetitions: 2, Warmup: 0, Seed: 1, HasSeed: true})
	assert.Len(t, series, 1)
	assert.Equal(t, 2, info.TotalTasks)
}

func TestRunProgress(t *testing.T) {
	var updates [][2]int
	groups := []Group{{
		Algorithm: "alg",
		Size:      64,
		Variants:  []Variant{&countingVariant{name: "v"}},
	}}
	cfg := Config{
		Repetitions: 100,
		Warmup:      0,
		Seed:        1,
		HasSeed:     true,
		Progress:    func(done, total int) { updates = append(updates, [2]int{done, total}) },
	}
	Run(groups, cfg)

	// Buffered updates: roughly every 10%, and always the final task.
	require.NotEmpty(t, updates)
	assert.Len(t, updates, 10)
	assert.Equal(t, [2]int{100, 100}, updates[len(updates)-1])
	assert.Less(t, len(updates), 100, "progress must not fire per task")
}

func TestRunPinning(t *testing.T) {
	groups := []Group{{
		Algorithm: "alg",
		Size:      64,
		Variants:  []Variant{&countingVariant{name: "v"}},
	}}

	for _, pin := range []PinStrategy{PinGlobal, PinPerExecution} {
		_, info := Run(groups, Config{Repetitions: 2, Warmup: 0, Seed: 1, HasSeed: true, Pin: pin})
		if affinity.Supported() {
			assert.True(t, info.Pinned, "strategy %s", pin)
			assert.GreaterOrEqual(t, info.PinnedCore, 0, "strategy %s", pin)
		} else {
			assert.False(t, info.Pinned, "strategy %s", pin)
			assert.Equal(t, -1, info.PinnedCore, "strategy %s", pin)
		}
	}
}

func TestParsePinStrategy(t *testing.T) {
	cases := []struct {
		token string
		want  PinStrategy
	}{
		{"global", PinGlobal},
		{"per-call", PinPerExecution},
		{"per-execution", PinPerExecution},
	}
	for _, c := range cases {
		got, err := ParsePinStrategy(c.token)
		require.NoError(t, err, c.token)
		assert.Equal(t, c.want, got, c.token)
	}

	_, err := ParsePinStrategy("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestCollect(t *testing.T) {
	mk := func(alg string, size int, name string, samples ...uint64) Series {
		s := Series{
			Algorithm: alg,
			Size:      size,
			Variant:   &countingVariant{name: name},
		}
		for _, v := range samples {
			s.Samples = append(s.Samples, timing.Measurement(v))
		}
		return s
	}

	series := []Series{
		mk("alg1", 64, "a", 100, 150, 200),
		mk("alg1", 64, "b", 300, 300, 300),
		mk("alg1", 256, "a", 10),
		mk("alg2", 64, "x", 50, 70),
	}

	groups := Collect(series, false)
	require.Len(t, groups, 3)

	assert.Equal(t, "alg1", groups[0].Algorithm)
	assert.Equal(t, 64, groups[0].Size)
	require.Len(t, groups[0].Results, 2)
	assert.Equal(t, "a", groups[0].Results[0].Name)
	assert.Equal(t, "b", groups[0].Results[1].Name)
	assert.Equal(t, 3, groups[0].Results[0].Repetitions)
	assert.Equal(t, int64(150), int64(groups[0].Results[0].Stats.Mean))

	assert.Equal(t, 256, groups[1].Size)
	assert.Equal(t, "alg2", groups[2].Algorithm)
}
