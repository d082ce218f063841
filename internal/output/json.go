package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/wesleyorama2/benchloop/internal/samples"
)

// IterationRecord is the JSON form of one iteration.
type IterationRecord struct {
	Iteration int     `json:"iteration"`
	Elapsed   float64 `json:"elapsed"`
	Median    float64 `json:"median"`
	ExitCode  int     `json:"exitCode"`
	StartedAt string  `json:"startedAt,omitempty"`
	RunID     string  `json:"runId,omitempty"`
}

// JSONReporter writes one JSON object per line.
type JSONReporter struct {
	enc   *json.Encoder
	runID string
}

// NewJSONReporter creates a JSON lines reporter tagging every record with runID.
func NewJSONReporter(w io.Writer, runID string) *JSONReporter {
	return &JSONReporter{
		enc:   json.NewEncoder(w),
		runID: runID,
	}
}

// Report encodes the iteration as a single line.
func (r *JSONReporter) Report(s samples.Sample, median time.Duration) error {
	rec := IterationRecord{
		Iteration: s.Iteration,
		Elapsed:   s.Seconds(),
		Median:    median.Seconds(),
		ExitCode:  s.ExitCode,
		RunID:     r.runID,
	}
	if !s.StartedAt.IsZero() {
		rec.StartedAt = s.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	return r.enc.Encode(rec)
}
