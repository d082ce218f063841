package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchloop/internal/config"
	"github.com/wesleyorama2/benchloop/internal/launcher"
	"github.com/wesleyorama2/benchloop/internal/logging"
	"github.com/wesleyorama2/benchloop/internal/loop"
	"github.com/wesleyorama2/benchloop/internal/metrics"
	"github.com/wesleyorama2/benchloop/internal/output"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

// metricsShutdownTimeout bounds how long exit waits for metrics scrapes.
const metricsShutdownTimeout = 5 * time.Second

// runLoop runs the timed invocation loop until --count is reached, the
// benchmark cannot be launched, or the process is interrupted.
func runLoop(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	v, err := newViper(cmd)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	logger, err := logging.New(stderr, logging.Options{
		Level:     v.GetString("log-level"),
		Format:    v.GetString("log-format"),
		Verbose:   v.GetBool("verbose"),
		Component: "benchloop",
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	cfg, err := resolveConfig(v)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	command, err := cfg.LauncherCommand()
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	runID := uuid.NewString()
	logger.Debug("resolved configuration",
		"runId", runID,
		"name", cfg.Name,
		"variant", cfg.Variant,
		"command", command.String(),
		"output", string(command.Output),
		"median", cfg.Median,
		"format", cfg.Format,
		"count", cfg.Count)

	reporter, err := output.NewReporter(output.OutputFormat(cfg.Format), stdout, output.Options{
		Color: output.UseColor(stdout, cfg.NoColor),
		RunID: runID,
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector(runID, command.String())
		srv, err := metrics.Start(cfg.MetricsAddr, collector, logger)
		if err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
		defer shutdownMetrics(srv, logger)
		reporter = collector.Wrap(reporter)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc := launcher.NewProcess()
	proc.Stdout = stdout
	proc.Stderr = stderr

	l := loop.New(proc, command, samples.NewRecorder(cfg.MedianMode()), reporter,
		loop.WithMaxIterations(cfg.Count),
		loop.WithLogger(logger))

	started := time.Now()
	err = l.Run(ctx)
	stop()

	switch {
	case err == nil:
		logger.Debug("iteration limit reached", "iterations", l.Iterations())
		return nil
	case ctx.Err() != nil && !errors.Is(err, launcher.ErrLaunch):
		writeSummary(stderr, runID, cfg, l, time.Since(started), logger)
		return &ExitError{Code: ExitInterrupted}
	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}

// writeSummary prints the end-of-run table.
func writeSummary(w io.Writer, runID string, cfg *config.HarnessConfig, l *loop.Loop, wall time.Duration, logger *slog.Logger) {
	s := output.Summary{
		RunID:      runID,
		Command:    l.Command().String(),
		Median:     cfg.Median,
		Iterations: l.Iterations(),
		WallTime:   wall,
	}
	s.MedianValue = l.Recorder().Median()
	if last, ok := l.Recorder().Last(); ok {
		s.LastElapsed = last.Elapsed
	}

	fmt.Fprintln(w)
	if err := output.WriteSummary(w, s); err != nil {
		logger.Warn("failed to write summary", "error", err)
	}
}

func shutdownMetrics(srv *metrics.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown error", "error", err)
	}
}
