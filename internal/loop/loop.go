// Package loop runs the timed invocation loop: launch the benchmark,
// time it, record it, report the running median, repeat.
package loop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wesleyorama2/benchloop/internal/launcher"
	"github.com/wesleyorama2/benchloop/internal/logging"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

// Reporter receives every completed iteration together with the median
// of all samples recorded so far.
type Reporter interface {
	Report(s samples.Sample, median time.Duration) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(s samples.Sample, median time.Duration) error

// Report calls f(s, median).
func (f ReporterFunc) Report(s samples.Sample, median time.Duration) error {
	return f(s, median)
}

// Loop is the timed invocation loop.
//
// # Thread Safety
//
// Loop is single-threaded. Run and Step must not be called concurrently;
// there is never more than one child in flight.
type Loop struct {
	launcher launcher.Launcher
	command  launcher.Command
	recorder samples.Recorder
	reporter Reporter
	logger   *slog.Logger

	now           func() time.Time
	maxIterations int

	iteration int
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces time.Now for measuring launches.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

// WithMaxIterations stops Run after n iterations. 0 runs forever.
func WithMaxIterations(n int) Option {
	return func(l *Loop) {
		l.maxIterations = n
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New creates a loop that launches cmd through ln on every iteration.
func New(ln launcher.Launcher, cmd launcher.Command, recorder samples.Recorder, reporter Reporter, opts ...Option) *Loop {
	l := &Loop{
		launcher: ln,
		command:  cmd,
		recorder: recorder,
		reporter: reporter,
		logger:   logging.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run repeats Step until the context is cancelled, the iteration limit is
// reached, or an iteration fails.
//
// Under normal operation with no limit Run never returns. It returns nil
// only when the iteration limit is reached, ctx.Err() on cancellation, and
// otherwise the first Step error (a *launcher.LaunchError when the child
// cannot be started).
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("starting loop",
		"command", l.command.String(),
		"output", string(l.command.Output),
		"maxIterations", l.maxIterations)

	for {
		if l.maxIterations > 0 && l.iteration >= l.maxIterations {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.Step(ctx); err != nil {
			return err
		}
	}
}

// Step performs exactly one iteration.
//
// If the child cannot be launched, or ctx is cancelled while it runs,
// nothing is recorded or reported and the iteration counter does not advance.
func (l *Loop) Step(ctx context.Context) (samples.Sample, error) {
	timing := newTiming(l.now)

	res, err := l.launcher.Launch(ctx, l.command)
	if err != nil {
		return samples.Sample{}, err
	}
	timing.complete()

	// An interrupt reaches the child too; its truncated run is not a sample.
	if err := ctx.Err(); err != nil {
		return samples.Sample{}, err
	}

	s := samples.Sample{
		Iteration: l.iteration + 1,
		Elapsed:   timing.duration(),
		ExitCode:  res.ExitCode,
		StartedAt: timing.startedAt,
	}

	l.recorder.Record(s)
	median := l.recorder.Median()

	if s.ExitCode != 0 {
		l.logger.Debug("child exited non-zero", "iteration", s.Iteration, "exitCode", s.ExitCode)
	}

	if err := l.reporter.Report(s, median); err != nil {
		return s, fmt.Errorf("failed to report iteration %d: %w", s.Iteration, err)
	}

	l.iteration = s.Iteration
	return s, nil
}

// Iterations returns the number of completed iterations.
func (l *Loop) Iterations() int {
	return l.iteration
}

// Recorder returns the loop's sample recorder.
func (l *Loop) Recorder() samples.Recorder {
	return l.recorder
}

// Command returns the command launched on every iteration.
func (l *Loop) Command() launcher.Command {
	return l.command
}
