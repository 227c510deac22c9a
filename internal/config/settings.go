package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the validated run configuration, immutable for one
// invocation.
type Settings struct {
	// Sizes are payload input scales, passed through to payload
	// constructors.
	Sizes []int
	// Runs is the repetition count per variant.
	Runs int
	// Warmup is the discarded iteration count per variant.
	Warmup int
	// SeedRaw is the user-supplied seed token; empty means derive
	// one from the current time.
	SeedRaw string
	// Pin is the pinning strategy token ("global" or "per-call").
	Pin string
	// Filter enables outlier trimming during aggregation.
	Filter bool
	// CSVPath, when non-empty, is where aggregates are exported.
	CSVPath string
}

// FromViper assembles Settings from the loaded configuration.
func FromViper() Settings {
	return Settings{
		Sizes:   viper.GetIntSlice("sizes"),
		Runs:    viper.GetInt("runs"),
		Warmup:  viper.GetInt("warmup"),
		SeedRaw: viper.GetString("seed"),
		Pin:     viper.GetString("pin"),
		Filter:  viper.GetBool("filter"),
		CSVPath: viper.GetString("csv"),
	}
}

// Seed parses the user-supplied seed. ok is false when no seed was
// supplied and the run should derive one from the current time.
func (s Settings) Seed() (seed uint64, ok bool) {
	if s.SeedRaw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s.SeedRaw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks all values and returns every problem at once, so the
// user fixes one invocation, not one flag per attempt.
func (s Settings) Validate() error {
	var errs []string

	if len(s.Sizes) == 0 {
		errs = append(errs, "sizes must contain at least one positive integer")
	}
	for _, size := range s.Sizes {
		if size < 0 {
			errs = append(errs, fmt.Sprintf("sizes must be non-negative, got: %d", size))
			break
		}
	}
	if s.Runs <= 0 {
		errs = append(errs, fmt.Sprintf("runs must be positive, got: %d", s.Runs))
	}
	if s.Warmup < 0 {
		errs = append(errs, fmt.Sprintf("warmup must be non-negative, got: %d", s.Warmup))
	}
	switch s.Pin {
	case "global", "per-call", "per-execution":
	default:
		errs = append(errs, fmt.Sprintf("unknown pin strategy %q (use \"global\" or \"per-call\")", s.Pin))
	}
	if s.SeedRaw != "" {
		if _, err := strconv.ParseUint(s.SeedRaw, 10, 64); err != nil {
			errs = append(errs, fmt.Sprintf("seed must be an unsigned integer, got: %q", s.SeedRaw))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
