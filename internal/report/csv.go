package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"varbench/internal/engine"
)

// WriteCSV exports aggregated results, one row per (algorithm, variant,
// size). The compiler column records the Go toolchain the binary was
// built with, so exported runs remain comparable across versions.
func WriteCSV(path string, groups []engine.GroupResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"algorithm", "variant", "compiler", "input_size", "avg_time_ns", "result"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	compiler := runtime.Version()
	for _, g := range groups {
		for _, r := range g.Results {
			result := ""
			if r.HasResult {
				result = strconv.FormatFloat(r.Result, 'g', -1, 64)
			}
			row := []string{
				g.Algorithm,
				r.Name,
				compiler,
				strconv.Itoa(g.Size),
				strconv.FormatInt(int64(r.Stats.Mean), 10),
				result,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
