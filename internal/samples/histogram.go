package samples

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HistogramConfig bounds the values a Histogram can hold.
type HistogramConfig struct {
	// Min is the lowest recordable value in microseconds (default: 1)
	Min int64

	// Max is the highest recordable value in microseconds (default: 1 hour)
	Max int64

	// SigFigs is the number of significant figures kept (default: 3)
	SigFigs int
}

// DefaultHistogramConfig returns the default histogram bounds.
func DefaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		Min:     1,
		Max:     3600000000, // 1 hour in microseconds
		SigFigs: 3,
	}
}

// Histogram is a bounded-memory Recorder.
//
// Samples are folded into an HDR histogram, so memory stays constant no
// matter how long the loop runs. The median is the histogram's 50th
// percentile: accurate to SigFigs significant figures, and for an even
// count it is the lower middle value rather than the mean of the two
// middle values.
type Histogram struct {
	hist   *hdrhistogram.Histogram
	config HistogramConfig
	last   Sample
	count  int
}

// NewHistogram creates a histogram recorder with default bounds.
func NewHistogram() *Histogram {
	return NewHistogramWithConfig(DefaultHistogramConfig())
}

// NewHistogramWithConfig creates a histogram recorder with custom bounds.
func NewHistogramWithConfig(config HistogramConfig) *Histogram {
	return &Histogram{
		hist:   hdrhistogram.New(config.Min, config.Max, config.SigFigs),
		config: config,
	}
}

// Record folds a sample into the histogram.
func (h *Histogram) Record(s Sample) {
	micros := s.Elapsed.Microseconds()

	// Clamp to valid range
	if micros < h.config.Min {
		micros = h.config.Min
	}
	if micros > h.config.Max {
		micros = h.config.Max
	}

	// Cannot fail after clamping
	_ = h.hist.RecordValue(micros)
	h.last = s
	h.count++
}

// Len returns the number of recorded samples.
func (h *Histogram) Len() int {
	return h.count
}

// Median returns the approximate median elapsed time.
func (h *Histogram) Median() time.Duration {
	if h.count == 0 {
		return 0
	}
	return time.Duration(h.hist.ValueAtQuantile(50)) * time.Microsecond
}

// Last returns the most recent sample.
func (h *Histogram) Last() (Sample, bool) {
	return h.last, h.count > 0
}
