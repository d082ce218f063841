package samples

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineMedian recomputes the median from scratch.
func offlineMedian(values []time.Duration) time.Duration {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	lo, hi := sorted[n/2-1], sorted[n/2]
	return lo + (hi-lo)/2
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

func TestSequence_Empty(t *testing.T) {
	q := NewSequence()

	assert.Equal(t, 0, q.Len())
	assert.Equal(t, time.Duration(0), q.Median())
	_, ok := q.Last()
	assert.False(t, ok)
	assert.Empty(t, q.Samples())
}

func TestSequence_MedianSteps(t *testing.T) {
	q := NewSequence()

	inputs := []float64{0.2, 0.1, 0.3, 0.4}
	expected := []float64{0.2, 0.15, 0.2, 0.25}

	for i, in := range inputs {
		q.Record(Sample{Iteration: i + 1, Elapsed: seconds(in)})
		assert.InDelta(t, expected[i], q.Median().Seconds(), 1e-9, "median after step %d", i+1)
		assert.Equal(t, i+1, q.Len())
	}
}

func TestSequence_MatchesOfflineMedian(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewSequence()
	var seen []time.Duration

	for i := 0; i < 500; i++ {
		d := time.Duration(rng.Int63n(int64(2 * time.Second)))
		// Duplicates exercise the equal-value heap path
		if i%7 == 0 && len(seen) > 0 {
			d = seen[rng.Intn(len(seen))]
		}
		seen = append(seen, d)
		q.Record(Sample{Iteration: i + 1, Elapsed: d})

		require.Equal(t, offlineMedian(seen), q.Median(), "after %d samples", i+1)
	}
}

func TestSequence_PreservesChronologicalOrder(t *testing.T) {
	q := NewSequence()
	inputs := []float64{0.5, 0.1, 0.9, 0.3}

	for i, in := range inputs {
		q.Record(Sample{Iteration: i + 1, Elapsed: seconds(in)})
	}

	got := q.Samples()
	require.Len(t, got, len(inputs))
	for i, s := range got {
		assert.Equal(t, i+1, s.Iteration)
		assert.Equal(t, seconds(inputs[i]), s.Elapsed)
	}

	last, ok := q.Last()
	require.True(t, ok)
	assert.Equal(t, 4, last.Iteration)
}

func TestSequence_SamplesReturnsCopy(t *testing.T) {
	q := NewSequence()
	q.Record(Sample{Iteration: 1, Elapsed: time.Second})

	got := q.Samples()
	got[0].Elapsed = time.Hour

	assert.Equal(t, time.Second, q.Samples()[0].Elapsed)
}

func TestNewRecorder(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want interface{}
	}{
		{name: "exact", mode: ModeExact, want: &Sequence{}},
		{name: "histogram", mode: ModeHistogram, want: &Histogram{}},
		{name: "unknown falls back to exact", mode: Mode("bogus"), want: &Sequence{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, NewRecorder(tt.mode))
		})
	}
}

func TestSample_Seconds(t *testing.T) {
	s := Sample{Elapsed: 1500 * time.Millisecond}
	assert.InDelta(t, 1.5, s.Seconds(), 1e-12)
}
