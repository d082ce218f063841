package output

import (
	"fmt"
	"io"
	"time"

	"github.com/wesleyorama2/benchloop/internal/samples"
)

// TextReporter writes exactly two lines per iteration:
//
//	iteration N: E.EEEEEE s
//	median so far: M.MMMMMM s
type TextReporter struct {
	w      io.Writer
	colors *ColorScheme
}

// NewTextReporter creates a text reporter. Labels and values are colored
// only when useColor is true.
func NewTextReporter(w io.Writer, useColor bool) *TextReporter {
	return &TextReporter{
		w:      w,
		colors: SchemeFor(useColor),
	}
}

// Report writes the iteration line followed by the median line. The
// elapsed value of a run that exited non-zero uses the warn color; the
// text is the same either way.
func (r *TextReporter) Report(s samples.Sample, median time.Duration) error {
	value := r.colors.Value
	if s.ExitCode != 0 {
		value = r.colors.Warn
	}
	_, err := fmt.Fprintf(r.w, "%s %s\n%s %s\n",
		r.colors.Label.Sprintf("iteration %d:", s.Iteration),
		value.Sprintf("%s s", formatSeconds(s.Elapsed)),
		r.colors.Label.Sprint("median so far:"),
		r.colors.Median.Sprintf("%s s", formatSeconds(median)),
	)
	return err
}
