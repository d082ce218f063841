package loop

import "time"

// timing records start/end timestamps of one launch.
type timing struct {
	now         func() time.Time
	startedAt   time.Time
	completedAt time.Time
}

// newTiming creates a timing with the current start time.
func newTiming(now func() time.Time) *timing {
	return &timing{
		now:       now,
		startedAt: now(),
	}
}

// complete records the completion time.
func (t *timing) complete() {
	t.completedAt = t.now()
}

// duration returns the elapsed time, never negative.
func (t *timing) duration() time.Duration {
	end := t.completedAt
	if end.IsZero() {
		end = t.now()
	}
	d := end.Sub(t.startedAt)
	if d < 0 {
		return 0
	}
	return d
}
