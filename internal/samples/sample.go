// Package samples holds timing samples and the running median over them.
package samples

import (
	"time"
)

// Sample is the timing of a single child invocation.
type Sample struct {
	// Iteration is the 1-based invocation number
	Iteration int `json:"iteration"`

	// Elapsed is the wall-clock time between launch and exit
	Elapsed time.Duration `json:"elapsed"`

	// ExitCode is the child's exit status (-1 when killed by a signal)
	ExitCode int `json:"exitCode"`

	// StartedAt is when the child was launched
	StartedAt time.Time `json:"startedAt"`
}

// Seconds returns the elapsed time in fractional seconds.
func (s Sample) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// Recorder accumulates samples and answers the median of everything
// recorded so far.
type Recorder interface {
	// Record appends a sample.
	Record(s Sample)

	// Len returns the number of samples recorded.
	Len() int

	// Median returns the median elapsed time, or 0 if nothing was recorded.
	Median() time.Duration

	// Last returns the most recent sample, if any.
	Last() (Sample, bool)
}

// Mode selects a Recorder implementation.
type Mode string

const (
	// ModeExact keeps every sample and reports the exact median.
	ModeExact Mode = "exact"

	// ModeHistogram keeps a fixed-size histogram and reports an
	// approximate median.
	ModeHistogram Mode = "histogram"
)

// NewRecorder returns the recorder for the given mode. Unknown modes fall
// back to exact.
func NewRecorder(mode Mode) Recorder {
	if mode == ModeHistogram {
		return NewHistogram()
	}
	return NewSequence()
}
