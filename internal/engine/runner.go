package engine

import (
	"runtime"

	"varbench/internal/affinity"
	"varbench/internal/schedule"
	"varbench/internal/timing"
)

// Group is one (algorithm, input size) batch of variants. Groups run
// interleaved: tasks from every group are shuffled into a single flat
// schedule so systematic drift (thermal, frequency scaling, cache
// warm-up order) cancels across variants instead of biasing one.
type Group struct {
	Algorithm string
	Size      int
	Variants  []Variant
}

// Series is the raw output for one variant: every measurement in
// execution order plus the last result sample the trials produced.
type Series struct {
	Algorithm string
	Size      int
	Variant   Variant
	Samples   []timing.Measurement
	Result    float64
	HasResult bool
}

// RunInfo reports how a run was actually executed.
type RunInfo struct {
	// Seed is the effective shuffle seed; with it the exact task
	// order can be reproduced.
	Seed       uint64
	TotalTasks int
	// PinnedCore is the core the first successful guard pinned to;
	// Pinned is false when the platform has no affinity support.
	PinnedCore int
	Pinned     bool
}

// task points a scheduled repetition at its variant's series slot.
type task struct {
	slot       int
	repetition int
}

// Run executes all groups: warmup first, then every (variant,
// repetition) pair exactly once in seeded shuffled order. Execution is
// strictly single-threaded on a locked OS thread; parallelism would
// contend for cores and invalidate pinning. A panicking trial
// propagates and aborts the run.
func Run(groups []Group, cfg Config) ([]Series, RunInfo) {
	cfg = cfg.withDefaults()

	series := make([]Series, 0)
	for _, g := range groups {
		for _, v := range g.Variants {
			series = append(series, Series{
				Algorithm: g.Algorithm,
				Size:      g.Size,
				Variant:   v,
				Samples:   make([]timing.Measurement, 0, cfg.Repetitions),
			})
		}
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = schedule.TimeSeed()
	}
	info := RunInfo{Seed: seed, PinnedCore: -1}

	// Warmup every variant before any measurement so the shuffled
	// loop starts from a uniformly warm state.
	for i := range series {
		for w := 0; w < cfg.Warmup; w++ {
			series[i].Variant.RunTrial()
		}
	}

	tasks := make([]task, 0, len(series)*cfg.Repetitions)
	for slot := range series {
		for rep := 0; rep < cfg.Repetitions; rep++ {
			tasks = append(tasks, task{slot: slot, repetition: rep})
		}
	}
	rng := schedule.NewRNG(seed)
	schedule.Shuffle(tasks, rng)
	info.TotalTasks = len(tasks)

	// Affinity binds to the OS thread, so the whole measurement loop
	// stays on one locked thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cfg.Pin == PinGlobal {
		guard := affinity.Pin()
		defer guard.Release()
		noteGuard(&info, guard)
	}

	interval := len(tasks) / 10
	if interval < 1 {
		interval = 1
	}

	for i, t := range tasks {
		if cfg.Pin == PinPerExecution {
			guard := affinity.Pin()
			noteGuard(&info, guard)
			runTask(&series[t.slot])
			guard.Release()
		} else {
			runTask(&series[t.slot])
		}

		if cfg.Progress != nil && ((i+1)%interval == 0 || i+1 == len(tasks)) {
			cfg.Progress(i+1, len(tasks))
		}
	}

	return series, info
}

func runTask(s *Series) {
	m, result, ok := s.Variant.RunTrial()
	s.Samples = append(s.Samples, m)
	if ok {
		// Last write wins; the sample is for verification and
		// display, not statistics.
		s.Result = result
		s.HasResult = true
	}
}

func noteGuard(info *RunInfo, g *affinity.Guard) {
	if info.Pinned {
		return
	}
	if core, ok := g.Core(); ok {
		info.PinnedCore = core
		info.Pinned = true
	}
}
