package schedule

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks(t *testing.T) {
	t.Run("covers the cross product exactly once", func(t *testing.T) {
		tasks := Tasks(3, 4)
		require.Len(t, tasks, 12)

		seen := make(map[Task]int)
		for _, task := range tasks {
			seen[task]++
		}
		for v := 0; v < 3; v++ {
			for rep := 0; rep < 4; rep++ {
				assert.Equal(t, 1, seen[Task{Variant: v, Repetition: rep}],
					"variant %d repetition %d", v, rep)
			}
		}
	})

	t.Run("degenerate counts yield no tasks", func(t *testing.T) {
		assert.Nil(t, Tasks(0, 5))
		assert.Nil(t, Tasks(5, 0))
		assert.Nil(t, Tasks(-1, 5))
	})
}

func TestShuffle(t *testing.T) {
	t.Run("is a permutation", func(t *testing.T) {
		items := make([]int, 100)
		for i := range items {
			items[i] = i
		}
		Shuffle(items, NewRNG(42))

		sorted := append([]int(nil), items...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v, "element %d lost or duplicated", i)
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		a := Tasks(5, 20)
		b := Tasks(5, 20)
		Shuffle(a, NewRNG(99))
		Shuffle(b, NewRNG(99))
		assert.Equal(t, a, b)
	})

	t.Run("different seeds give different orders", func(t *testing.T) {
		a := Tasks(5, 20)
		b := Tasks(5, 20)
		Shuffle(a, NewRNG(1))
		Shuffle(b, NewRNG(2))
		// 100 tasks; identical permutations from different seeds would
		// mean the shuffle ignores the generator.
		assert.NotEqual(t, a, b)
	})

	t.Run("handles empty and single-element slices", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Shuffle([]int{}, NewRNG(1))
			Shuffle([]int{7}, NewRNG(1))
		})
	})
}
