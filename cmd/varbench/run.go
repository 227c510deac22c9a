package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"varbench/internal/algo"
	"varbench/internal/config"
	"varbench/internal/engine"
	"varbench/internal/report"
	"varbench/internal/schedule"
	"varbench/internal/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Run benchmarks for all payloads or a single one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmarks(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runBenchmarks is the whole pipeline: validate config, select
// payloads, verify correctness, execute the shuffled measurement run,
// aggregate, render, export.
func runBenchmarks(cmd *cobra.Command, args []string) error {
	settings := config.FromViper()
	if err := settings.Validate(); err != nil {
		return err
	}

	registry := algo.Default()
	runners, err := selectRunners(registry, args)
	if err != nil {
		return err
	}

	// Resolve the effective seed up front: it drives input
	// generation as well as the shuffle.
	seed, ok := settings.Seed()
	if !ok {
		seed = schedule.TimeSeed()
	}

	pin, err := engine.ParsePinStrategy(settings.Pin)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintHeader(out)

	// Verification gates the timing report: run it first so a
	// fast-but-wrong variant is flagged before any table prints.
	verification := make(map[string]error, len(runners))
	for _, r := range runners {
		verification[r.Name()] = r.Verify()
		if err := verification[r.Name()]; err != nil {
			telemetry.LogError("verification failed", err, "algorithm", r.Name())
		}
	}

	var groups []engine.Group
	for _, r := range runners {
		for _, size := range settings.Sizes {
			groups = append(groups, engine.Group{
				Algorithm: r.Name(),
				Size:      size,
				Variants:  r.Variants(size, seed),
			})
		}
	}

	progress := report.NewProgress(os.Stderr)
	cfg := engine.Config{
		Repetitions: settings.Runs,
		Warmup:      settings.Warmup,
		Seed:        seed,
		HasSeed:     true,
		Pin:         pin,
		Progress:    progress.Update,
	}

	telemetry.LogDebug("starting run",
		"seed", seed, "runs", settings.Runs, "warmup", settings.Warmup,
		"pin", pin.String(), "sizes", settings.Sizes)

	series, info := engine.Run(groups, cfg)
	progress.Finish()

	results := engine.Collect(series, settings.Filter)
	report.PrintRunInfo(out, info, pin, settings.Filter)

	byAlgorithm := make(map[string][]engine.GroupResult)
	for _, g := range results {
		byAlgorithm[g.Algorithm] = append(byAlgorithm[g.Algorithm], g)
	}

	for _, r := range runners {
		report.PrintAlgorithmInfo(out, r.Name(), r.Category(), r.Description(), r.VariantNames())
		report.PrintVerification(out, r.Name(), verification[r.Name()])
		for _, size := range settings.Sizes {
			g, ok := findGroup(byAlgorithm[r.Name()], size)
			if !ok {
				// Payload skipped this size; still render the row.
				g = engine.GroupResult{Algorithm: r.Name(), Size: size}
			}
			report.PrintResultsTable(out, g, verification[r.Name()] == nil)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Note: speedup is relative to the first variant (the reference).")

	if settings.CSVPath != "" {
		if err := report.WriteCSV(settings.CSVPath, results); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		fmt.Fprintf(out, "Exported results to %s\n", settings.CSVPath)
	}

	return nil
}

func findGroup(groups []engine.GroupResult, size int) (engine.GroupResult, bool) {
	for _, g := range groups {
		if g.Size == size {
			return g, true
		}
	}
	return engine.GroupResult{}, false
}

// selectRunners resolves the optional positional algorithm filter.
func selectRunners(registry *algo.Registry, args []string) ([]algo.Runner, error) {
	if len(args) == 0 {
		return registry.All(), nil
	}
	r, ok := registry.Find(args[0])
	if !ok {
		return nil, fmt.Errorf("algorithm %q not found (available: %v)", args[0], registry.Names())
	}
	return []algo.Runner{r}, nil
}
