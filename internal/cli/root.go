package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/benchloop/internal/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the benchloop command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "benchloop",
		Short:   "Repeatedly run a benchmark executable and print the running median",
		Version: version,
		Long: `benchloop launches a pre-built benchmark executable over and over, times
each run by wall clock, and after every run prints that run's time and the
median of all runs so far. It runs until interrupted.

Built-in variants:
  benchloop                      # variant A: reference benchmark, output discarded
  benchloop --variant b          # variant B: electoral simulator, output shown

Override the executable or its arguments:
  benchloop --path ./reference_benchmark
  benchloop --variant b --path /opt/quadelect --args "-m borda -n 500"

Every flag can also be set as BENCHLOOP_<FLAG>, e.g. BENCHLOOP_PATH.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runLoop,
	}

	flags := root.Flags()
	flags.StringP("variant", "V", "", "Built-in preset: a|reference or b|electoral (default a)")
	flags.StringP("path", "p", "", "Benchmark executable (overrides the variant's path)")
	flags.String("args", "", "Arguments for the benchmark, split like a shell would without running one")
	flags.String("output", "", "Child stdout: discard or inherit")
	flags.StringP("config", "c", "", "Harness config file (YAML or JSON)")
	flags.String("median", "", "Median recorder: exact (keeps every sample) or histogram (bounded memory; approximate, lower middle value for even counts)")
	flags.StringP("format", "f", "", "Per-iteration output: text or json")
	flags.IntP("count", "n", 0, "Stop after N iterations (0 runs until interrupted)")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9464")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Log diagnostics to stderr (same as --log-level debug)")
	flags.String("log-level", "warn", "Diagnostic log level: debug, info, warn or error")
	flags.String("log-format", "text", "Diagnostic log format: text or json")

	root.AddCommand(newVariantsCmd())
	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(!output.UseColor(os.Stderr, false)), err)
		}
	}
	return err
}
