// Package config provides configuration parsing and validation for the
// benchmark harness.
package config

import (
	"github.com/wesleyorama2/benchloop/internal/launcher"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

// HarnessConfig is the root configuration for a benchmark loop.
//
// Example YAML:
//
//	name: "simulator plurality"
//	command:
//	  path: /opt/quadelect/quadelect
//	  argString: "-m plurality -n 10000 -o results.txt"
//	  output: inherit
//	median: exact
//	format: text
type HarnessConfig struct {
	// Name of the run (for the summary)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Variant selects a built-in preset that the rest of the file overrides
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`

	// Command is the benchmark child to launch every iteration
	Command CommandConfig `json:"command" yaml:"command"`

	// Median selects the recorder: "exact" or "histogram"
	Median string `json:"median,omitempty" yaml:"median,omitempty"`

	// Format selects the per-iteration output: "text" or "json"
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Count stops the loop after this many iterations (0 = run forever)
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// MetricsAddr enables the Prometheus endpoint when non-empty
	MetricsAddr string `json:"metricsAddr,omitempty" yaml:"metricsAddr,omitempty"`

	// NoColor disables colored labels
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// CommandConfig describes the child process.
type CommandConfig struct {
	// Path is the executable to run
	Path string `json:"path" yaml:"path"`

	// Args are passed verbatim (takes precedence over ArgString)
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// ArgString is split into words without a shell
	ArgString string `json:"argString,omitempty" yaml:"argString,omitempty"`

	// Output is "discard" or "inherit"
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Dir is the child's working directory
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ApplyDefaults fills empty fields with their defaults.
func (c *HarnessConfig) ApplyDefaults() {
	if c.Median == "" {
		c.Median = string(samples.ModeExact)
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Command.Output == "" {
		c.Command.Output = string(launcher.Discard)
	}
	if c.Name == "" {
		c.Name = c.Command.Path
	}
}

// LauncherCommand converts the command section into a launcher.Command.
// The config must have passed Validate.
func (c *HarnessConfig) LauncherCommand() (launcher.Command, error) {
	output, err := launcher.ParseDisposition(c.Command.Output)
	if err != nil {
		return launcher.Command{}, err
	}

	args := c.Command.Args
	if len(args) == 0 && c.Command.ArgString != "" {
		args, err = launcher.SplitArgs(c.Command.ArgString)
		if err != nil {
			return launcher.Command{}, err
		}
	}

	return launcher.Command{
		Path:   c.Command.Path,
		Args:   args,
		Output: output,
		Dir:    c.Command.Dir,
	}, nil
}

// MedianMode returns the recorder mode.
func (c *HarnessConfig) MedianMode() samples.Mode {
	return samples.Mode(c.Median)
}

// Merge overlays every non-zero field of other onto c.
func (c *HarnessConfig) Merge(other *HarnessConfig) {
	if other == nil {
		return
	}
	if other.Name != "" {
		c.Name = other.Name
	}
	if other.Variant != "" {
		c.Variant = other.Variant
	}
	if other.Command.Path != "" {
		c.Command.Path = other.Command.Path
	}
	if len(other.Command.Args) > 0 {
		c.Command.Args = other.Command.Args
		c.Command.ArgString = ""
	}
	if other.Command.ArgString != "" {
		c.Command.ArgString = other.Command.ArgString
		c.Command.Args = nil
	}
	if other.Command.Output != "" {
		c.Command.Output = other.Command.Output
	}
	if other.Command.Dir != "" {
		c.Command.Dir = other.Command.Dir
	}
	if other.Median != "" {
		c.Median = other.Median
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Count != 0 {
		c.Count = other.Count
	}
	if other.MetricsAddr != "" {
		c.MetricsAddr = other.MetricsAddr
	}
	if other.NoColor {
		c.NoColor = true
	}
}
