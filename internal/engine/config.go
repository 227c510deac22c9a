package engine

import "fmt"

// PinStrategy selects how the harness holds CPU affinity during the
// measurement loop.
type PinStrategy int

const (
	// PinPerExecution pins and unpins around every single task.
	// Higher overhead between tasks, tightest isolation against
	// mid-run core migration.
	PinPerExecution PinStrategy = iota
	// PinGlobal pins once before the task loop and unpins after.
	PinGlobal
)

// ParsePinStrategy maps a CLI token to a strategy.
func ParsePinStrategy(s string) (PinStrategy, error) {
	switch s {
	case "global":
		return PinGlobal, nil
	case "per-call", "per-execution":
		return PinPerExecution, nil
	}
	return 0, fmt.Errorf("unknown pin strategy %q (use \"global\" or \"per-call\")", s)
}

func (s PinStrategy) String() string {
	if s == PinGlobal {
		return "global"
	}
	return "per-call"
}

// Config controls one harness invocation. Immutable for its duration.
type Config struct {
	// Repetitions is the number of measured trials per variant.
	Repetitions int
	// Warmup is the number of discarded trials per variant before
	// measurement, to stabilize caches and frequency scaling.
	Warmup int
	// Seed drives the task shuffle when HasSeed is set; otherwise a
	// time-derived seed is used and reported back in RunInfo.
	Seed    uint64
	HasSeed bool
	// Pin selects the pinning strategy for the task loop.
	Pin PinStrategy
	// Progress, when non-nil, receives buffered completion updates
	// (roughly every 10% of tasks), never per task.
	Progress func(done, total int)
}

func (c Config) withDefaults() Config {
	if c.Repetitions <= 0 {
		c.Repetitions = 30
	}
	if c.Warmup < 0 {
		c.Warmup = 0
	}
	return c
}
