package samples

import (
	"container/heap"
	"time"
)

// Sequence is the chronological, append-only list of samples for one run.
//
// Alongside the list it maintains two heaps over the elapsed values (a
// max-heap holding the lower half and a min-heap holding the upper half)
// so that Median is O(1) and Record is O(log n).
//
// Sequence is not safe for concurrent use; the loop is its only owner.
type Sequence struct {
	samples []Sample
	lower   maxHeap
	upper   minHeap
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Record appends a sample and rebalances the median heaps.
func (q *Sequence) Record(s Sample) {
	q.samples = append(q.samples, s)

	v := s.Elapsed
	if q.lower.Len() == 0 || v <= q.lower.peek() {
		heap.Push(&q.lower, v)
	} else {
		heap.Push(&q.upper, v)
	}

	// Keep len(lower) == len(upper) or len(upper)+1
	switch {
	case q.lower.Len() > q.upper.Len()+1:
		heap.Push(&q.upper, heap.Pop(&q.lower))
	case q.upper.Len() > q.lower.Len():
		heap.Push(&q.lower, heap.Pop(&q.upper))
	}
}

// Len returns the number of recorded samples.
func (q *Sequence) Len() int {
	return len(q.samples)
}

// Median returns the exact median of every recorded elapsed time.
func (q *Sequence) Median() time.Duration {
	if q.lower.Len() == 0 {
		return 0
	}
	if q.lower.Len() > q.upper.Len() {
		return q.lower.peek()
	}
	lo, hi := q.lower.peek(), q.upper.peek()
	return lo + (hi-lo)/2
}

// Samples returns a copy of the recorded samples in chronological order.
func (q *Sequence) Samples() []Sample {
	out := make([]Sample, len(q.samples))
	copy(out, q.samples)
	return out
}

// Last returns the most recent sample.
func (q *Sequence) Last() (Sample, bool) {
	if len(q.samples) == 0 {
		return Sample{}, false
	}
	return q.samples[len(q.samples)-1], true
}

type minHeap []time.Duration

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(time.Duration)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
func (h minHeap) peek() time.Duration { return h[0] }

type maxHeap []time.Duration

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(time.Duration)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
func (h maxHeap) peek() time.Duration { return h[0] }
