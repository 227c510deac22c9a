// Package report renders benchmark results: the terminal tables, the
// progress bar and the CSV export. It consumes the engine's structured
// results and has no influence on measurement.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"varbench/internal/engine"
	"varbench/internal/timing"
)

// termWidth returns the terminal width clamped to a usable range, with
// a conventional 80-column fallback for pipes.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		if w < 40 {
			return 40
		}
		if w > 200 {
			return 200
		}
		return w
	}
	return 80
}

// styled renders s with the given style unless color is disabled.
func styled(style interface{ Render(...string) string }, s string) string {
	if termenv.EnvNoColor() {
		return s
	}
	return style.Render(s)
}

// PrintHeader prints the application banner.
func PrintHeader(w io.Writer) {
	width := termWidth()
	if width > 80 {
		width = 80
	}
	title := " varbench - implementation variant micro-benchmarks "
	fmt.Fprintln(w, styled(headerStyle, pad(title, width-2)))
	fmt.Fprintln(w)
}

// PrintRunInfo reports how the run is configured: effective seed (for
// reproduction), measurement unit, pinning outcome and filtering.
func PrintRunInfo(w io.Writer, info engine.RunInfo, pin engine.PinStrategy, filtered bool) {
	fmt.Fprintf(w, "Seed: %d   Unit: %s", info.Seed, timing.UnitName())
	if info.Pinned {
		fmt.Fprintf(w, "   Pinned: core %d (%s)", info.PinnedCore, pin)
	} else {
		fmt.Fprintf(w, "   Pinned: no (affinity unavailable)")
	}
	if filtered {
		fmt.Fprint(w, "   Outlier filter: on")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

// PrintAlgorithmInfo prints the payload info box.
func PrintAlgorithmInfo(w io.Writer, name, category, description string, variantNames []string) {
	content := fmt.Sprintf("Algorithm: %s\nCategory:  %s\n%s\nVariants:  %s",
		name, category, description, strings.Join(variantNames, ", "))
	box := infoBoxStyle.Width(min(termWidth()-2, 76)).Render(content)
	if termenv.EnvNoColor() {
		fmt.Fprintln(w, content)
	} else {
		fmt.Fprintln(w, box)
	}
}

// PrintVerification prints the pass/fail line for a payload. A failing
// payload is flagged before any of its timings appear.
func PrintVerification(w io.Writer, name string, err error) {
	if err == nil {
		fmt.Fprintf(w, "  %s verification passed\n", styled(passStyle, "✓"))
		return
	}
	fmt.Fprintf(w, "  %s verification FAILED: %v\n", styled(failStyle, "✗"), err)
	fmt.Fprintf(w, "  %s\n", styled(dimStyle, "timings below are not comparable"))
}

// PrintResultsTable prints the per-size comparison table. Speedup and
// relative error are computed against the first (reference) variant.
// With trusted false the table is marked untrustworthy.
func PrintResultsTable(w io.Writer, gr engine.GroupResult, trusted bool) {
	if len(gr.Results) == 0 {
		fmt.Fprintf(w, "  Size %-7d %s\n", gr.Size, styled(dimStyle, "(skipped: below payload minimum)"))
		return
	}

	width := termWidth()
	nameCol := width - 72
	if nameCol < 15 {
		nameCol = 15
	}

	note := ""
	if !trusted {
		note = "  [UNVERIFIED]"
	}
	fmt.Fprintf(w, "  Size: %d (%d runs)%s\n", gr.Size, gr.Results[0].Repetitions, styled(failStyle, note))

	rule := strings.Repeat("─", min(width-2, nameCol+70))
	fmt.Fprintf(w, "  %s\n", rule)
	fmt.Fprintf(w, "  %s\n", styled(tableHeadStyle,
		fmt.Sprintf("%-*s %12s %12s %12s %9s %9s %11s",
			nameCol, "Variant", "Average", "Min", "Max", "Speedup", "CV", "Rel. Error")))
	fmt.Fprintf(w, "  %s\n", rule)

	baseline := gr.Results[0]
	baseNs := float64(baseline.Stats.Mean)

	for i, r := range gr.Results {
		speedup := 0.0
		if float64(r.Stats.Mean) > 0 {
			speedup = baseNs / float64(r.Stats.Mean)
		}
		cv := 0.0
		if r.Stats.Mean > 0 {
			cv = float64(r.Stats.StdDev) / float64(r.Stats.Mean) * 100
		}
		relErr := 0.0
		if r.HasResult && baseline.HasResult {
			diff := r.Result - baseline.Result
			if diff < 0 {
				diff = -diff
			}
			if base := baseline.Result; base > 1e-9 || base < -1e-9 {
				relErr = diff / abs(base)
			} else {
				relErr = diff
			}
		}

		name := truncate(r.Name, nameCol)
		if i == 0 {
			name = styled(referenceStyle, pad(name, nameCol))
		} else {
			name = pad(name, nameCol)
		}

		fmt.Fprintf(w, "  %s %12s %12s %12s %8.2fx %8.2f%% %11.2e\n",
			name,
			formatMeasure(r.Stats.Mean),
			formatMeasure(r.Stats.Min),
			formatMeasure(r.Stats.Max),
			speedup,
			cv,
			relErr,
		)
	}
	fmt.Fprintln(w)
}

// formatMeasure renders a nanosecond-equivalent value. Cycle-backend
// values are dimensionless ticks and stay as plain integers.
func formatMeasure(d time.Duration) string {
	if timing.CycleBackend {
		return fmt.Sprintf("%d %s", int64(d), timing.UnitName())
	}
	ns := float64(d)
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.3fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.3fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.3fµs", ns/1e3)
	default:
		return fmt.Sprintf("%.0fns", ns)
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
