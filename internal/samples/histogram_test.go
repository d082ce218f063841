package samples

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_Empty(t *testing.T) {
	h := NewHistogram()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, time.Duration(0), h.Median())
	_, ok := h.Last()
	assert.False(t, ok)
}

func TestHistogram_ConstantSamples(t *testing.T) {
	h := NewHistogram()

	for i := 1; i <= 50; i++ {
		h.Record(Sample{Iteration: i, Elapsed: 100 * time.Millisecond})
	}

	assert.Equal(t, 50, h.Len())
	// 3 significant figures
	assert.InDelta(t, 0.1, h.Median().Seconds(), 0.1*0.001)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, 50, last.Iteration)
}

func TestHistogram_OddCountMedian(t *testing.T) {
	h := NewHistogram()
	for i, in := range []float64{0.2, 0.1, 0.3} {
		h.Record(Sample{Iteration: i + 1, Elapsed: seconds(in)})
	}

	assert.InDelta(t, 0.2, h.Median().Seconds(), 0.2*0.001)
}

func TestHistogram_ClampsOutOfRange(t *testing.T) {
	h := NewHistogramWithConfig(HistogramConfig{Min: 1, Max: 1000000, SigFigs: 3})

	h.Record(Sample{Iteration: 1, Elapsed: 0})
	h.Record(Sample{Iteration: 2, Elapsed: time.Hour})

	assert.Equal(t, 2, h.Len())
	assert.LessOrEqual(t, h.Median(), 1001*time.Millisecond)
}
