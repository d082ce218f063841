package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/benchloop/internal/launcher"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

func validConfig() *HarnessConfig {
	cfg := &HarnessConfig{
		Command: CommandConfig{Path: "/usr/local/bin/reference_benchmark"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_MinimalValid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *HarnessConfig)
		wantField string
	}{
		{
			name:      "missing path",
			mutate:    func(c *HarnessConfig) { c.Command.Path = "  " },
			wantField: "command.path",
		},
		{
			name:      "bad output",
			mutate:    func(c *HarnessConfig) { c.Command.Output = "pipe" },
			wantField: "command.output",
		},
		{
			name: "args and argString together",
			mutate: func(c *HarnessConfig) {
				c.Command.Args = []string{"-x"}
				c.Command.ArgString = "-y"
			},
			wantField: "command",
		},
		{
			name:      "unbalanced argString",
			mutate:    func(c *HarnessConfig) { c.Command.ArgString = `-o "oops` },
			wantField: "command.argString",
		},
		{
			name:      "bad median",
			mutate:    func(c *HarnessConfig) { c.Median = "mean" },
			wantField: "median",
		},
		{
			name:      "bad format",
			mutate:    func(c *HarnessConfig) { c.Format = "csv" },
			wantField: "format",
		},
		{
			name:      "negative count",
			mutate:    func(c *HarnessConfig) { c.Count = -2 },
			wantField: "count",
		},
		{
			name:      "bad metrics address",
			mutate:    func(c *HarnessConfig) { c.MetricsAddr = "9464" },
			wantField: "metricsAddr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs.Errors, 1)
			assert.Equal(t, tt.wantField, verrs.Errors[0].Path)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &HarnessConfig{Median: "mean", Format: "csv"}

	err := cfg.Validate()
	require.Error(t, err)

	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs))
	// path, output, median, format
	assert.Len(t, verrs.Errors, 4)
	assert.Contains(t, err.Error(), "4 validation errors")
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("command.path", "path is required")
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "validation error on field 'command.path': path is required", errs.Error())
}

func TestValidationError_NoPath(t *testing.T) {
	err := &ValidationError{Message: "broken"}
	assert.Equal(t, "validation error: broken", err.Error())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &HarnessConfig{Command: CommandConfig{Path: "./bench"}}
	cfg.ApplyDefaults()

	assert.Equal(t, "exact", cfg.Median)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "discard", cfg.Command.Output)
	assert.Equal(t, "./bench", cfg.Name)
	assert.Equal(t, samples.ModeExact, cfg.MedianMode())
}

func TestLauncherCommand(t *testing.T) {
	cfg := validConfig()
	cfg.Command.ArgString = `-m plurality -o "my results.txt"`
	cfg.Command.Output = "inherit"
	cfg.Command.Dir = "/tmp"

	cmd, err := cfg.LauncherCommand()
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/reference_benchmark", cmd.Path)
	assert.Equal(t, []string{"-m", "plurality", "-o", "my results.txt"}, cmd.Args)
	assert.Equal(t, launcher.Inherit, cmd.Output)
	assert.Equal(t, "/tmp", cmd.Dir)
}

func TestLauncherCommand_ArgsTakePrecedence(t *testing.T) {
	cfg := validConfig()
	cfg.Command.Args = []string{"a b"}

	cmd, err := cfg.LauncherCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"a b"}, cmd.Args)
	assert.Equal(t, launcher.Discard, cmd.Output)
}

func TestMerge(t *testing.T) {
	base, err := Variant(VariantElectoral)
	require.NoError(t, err)

	base.Merge(&HarnessConfig{
		Command: CommandConfig{
			Path: "/opt/sim",
			Args: []string{"-m", "borda"},
		},
		Format: FormatJSON,
		Count:  3,
	})

	assert.Equal(t, "/opt/sim", base.Command.Path)
	assert.Equal(t, []string{"-m", "borda"}, base.Command.Args)
	assert.Empty(t, base.Command.ArgString)
	assert.Equal(t, "inherit", base.Command.Output)
	assert.Equal(t, FormatJSON, base.Format)
	assert.Equal(t, 3, base.Count)

	base.Merge(&HarnessConfig{Command: CommandConfig{ArgString: "-m copeland"}})
	assert.Nil(t, base.Command.Args)
	assert.Equal(t, "-m copeland", base.Command.ArgString)

	base.Merge(nil)
	assert.Equal(t, "/opt/sim", base.Command.Path)
}
