package schedule

// Task is one scheduled unit of work: run repetition Repetition of
// variant Variant. The full task list covers the cross product
// (variant, repetition) exactly once.
type Task struct {
	Variant    int
	Repetition int
}

// Tasks builds the flat, unshuffled task list for variantCount variants
// at repetitions each, variant-major.
func Tasks(variantCount, repetitions int) []Task {
	if variantCount <= 0 || repetitions <= 0 {
		return nil
	}
	tasks := make([]Task, 0, variantCount*repetitions)
	for v := 0; v < variantCount; v++ {
		for rep := 0; rep < repetitions; rep++ {
			tasks = append(tasks, Task{Variant: v, Repetition: rep})
		}
	}
	return tasks
}

// Shuffle permutes items in place with Fisher-Yates: scanning from the
// end, element i swaps with a random element in [0, i]. This is a
// uniform permutation, and for a fixed RNG state the result is
// byte-identical across runs.
func Shuffle[T any](items []T, rng *RNG) {
	for i := len(items) - 1; i >= 1; i-- {
		j := int((rng.Next() >> 33) % uint64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
