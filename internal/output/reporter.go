// Package output renders loop iterations for humans and machines.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/wesleyorama2/benchloop/internal/samples"
)

// OutputFormat represents the available per-iteration output formats
type OutputFormat string

const (
	// FormatText is the default two-lines-per-iteration format
	FormatText OutputFormat = "text"
	// FormatJSON writes one JSON object per iteration
	FormatJSON OutputFormat = "json"
)

// Reporter receives each completed iteration and the running median.
type Reporter interface {
	Report(s samples.Sample, median time.Duration) error
}

// Options configures NewReporter.
type Options struct {
	Color bool
	RunID string
}

// NewReporter returns the reporter for format.
func NewReporter(format OutputFormat, w io.Writer, opts Options) (Reporter, error) {
	switch format {
	case FormatText, "":
		return NewTextReporter(w, opts.Color), nil
	case FormatJSON:
		return NewJSONReporter(w, opts.RunID), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatSeconds renders d in seconds with six decimals.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}
