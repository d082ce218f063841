// Package metrics exposes loop progress to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/wesleyorama2/benchloop/internal/output"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

// Collector holds the loop's Prometheus metrics in a private registry.
type Collector struct {
	registry *prometheus.Registry

	iterations   prometheus.Counter
	nonZeroExits prometheus.Counter
	lastElapsed  prometheus.Gauge
	median       prometheus.Gauge
	elapsed      prometheus.Histogram
}

// NewCollector creates and registers the loop metrics. Every series carries
// the run_id and command constant labels.
func NewCollector(runID, command string) *Collector {
	labels := prometheus.Labels{"run_id": runID, "command": command}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "benchloop_iterations_total",
			Help:        "Total completed benchmark invocations",
			ConstLabels: labels,
		}),
		nonZeroExits: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "benchloop_nonzero_exits_total",
			Help:        "Benchmark invocations that exited with a non-zero status",
			ConstLabels: labels,
		}),
		lastElapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "benchloop_last_elapsed_seconds",
			Help:        "Wall-clock time of the most recent invocation",
			ConstLabels: labels,
		}),
		median: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "benchloop_median_seconds",
			Help:        "Median wall-clock time of all invocations so far",
			ConstLabels: labels,
		}),
		elapsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "benchloop_elapsed_seconds",
			Help:        "Distribution of invocation wall-clock times",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 2, 16),
		}),
	}

	c.registry.MustRegister(
		c.iterations,
		c.nonZeroExits,
		c.lastElapsed,
		c.median,
		c.elapsed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the registry the metrics are registered in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe records one completed iteration.
func (c *Collector) Observe(s samples.Sample, median time.Duration) {
	c.iterations.Inc()
	if s.ExitCode != 0 {
		c.nonZeroExits.Inc()
	}
	c.lastElapsed.Set(s.Seconds())
	c.median.Set(median.Seconds())
	c.elapsed.Observe(s.Seconds())
}

// Reporter observes every iteration before passing it to the next reporter.
type Reporter struct {
	collector *Collector
	next      output.Reporter
}

// Wrap decorates next so each reported iteration also updates c.
func (c *Collector) Wrap(next output.Reporter) *Reporter {
	return &Reporter{collector: c, next: next}
}

// Report updates the metrics, then delegates.
func (r *Reporter) Report(s samples.Sample, median time.Duration) error {
	r.collector.Observe(s, median)
	if r.next == nil {
		return nil
	}
	return r.next.Report(s, median)
}
