package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wesleyorama2/benchloop/internal/config"
)

// envPrefix namespaces the environment variables bound onto flags.
const envPrefix = "BENCHLOOP"

// newViper binds every flag of cmd to BENCHLOOP_<FLAG>, dashes as underscores.
// A set flag wins over the environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// resolveConfig layers the harness configuration:
// built-in variant < config file < environment < flags.
func resolveConfig(v *viper.Viper) (*config.HarnessConfig, error) {
	var fileCfg *config.HarnessConfig
	if path := v.GetString("config"); path != "" {
		var err error
		fileCfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	variant := config.DefaultVariant
	if fileCfg != nil && fileCfg.Variant != "" {
		variant = fileCfg.Variant
	}
	if v.IsSet("variant") && v.GetString("variant") != "" {
		variant = v.GetString("variant")
	}

	cfg, err := config.Variant(variant)
	if err != nil {
		return nil, err
	}
	cfg.Merge(fileCfg)
	cfg.Merge(overrides(v))

	// An explicitly empty --args clears the preset's arguments.
	if v.IsSet("args") && v.GetString("args") == "" {
		cfg.Command.Args = nil
		cfg.Command.ArgString = ""
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrides collects the flag and environment values that were actually set.
func overrides(v *viper.Viper) *config.HarnessConfig {
	o := &config.HarnessConfig{}
	if v.IsSet("path") {
		o.Command.Path = v.GetString("path")
	}
	if v.IsSet("args") {
		o.Command.ArgString = v.GetString("args")
	}
	if v.IsSet("output") {
		o.Command.Output = v.GetString("output")
	}
	if v.IsSet("median") {
		o.Median = v.GetString("median")
	}
	if v.IsSet("format") {
		o.Format = v.GetString("format")
	}
	if v.IsSet("count") {
		o.Count = v.GetInt("count")
	}
	if v.IsSet("metrics-addr") {
		o.MetricsAddr = v.GetString("metrics-addr")
	}
	if v.IsSet("no-color") {
		o.NoColor = v.GetBool("no-color")
	}
	return o
}
