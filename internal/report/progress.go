package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
)

// Progress renders a single-line progress bar. It is repainted only
// when the engine's buffered callback fires (about every 10% of
// tasks), so it never perturbs the measurement loop.
type Progress struct {
	bar progress.Model
	out io.Writer
}

// NewProgress builds a progress bar writing to out.
func NewProgress(out io.Writer) *Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	if termenv.EnvNoColor() {
		bar = progress.New(progress.WithSolidFill("7"), progress.WithWidth(40))
	}
	return &Progress{bar: bar, out: out}
}

// Update repaints the bar in place. Safe to use as engine
// Config.Progress.
func (p *Progress) Update(done, total int) {
	if total <= 0 {
		return
	}
	frac := float64(done) / float64(total)
	fmt.Fprintf(p.out, "\r  %s %d/%d", p.bar.ViewAs(frac), done, total)
}

// Finish clears the bar line.
func (p *Progress) Finish() {
	fmt.Fprint(p.out, "\r\033[K")
}
