package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads a harness configuration file.
//
// The file format is determined by extension:
//   - .json -> JSON
//   - .yaml, .yml or anything else -> YAML
//
// The raw document is checked against the harness JSON schema before it
// is decoded. {{NAME}} placeholders in the command section are replaced
// with environment variables, and a relative command path or dir is
// resolved against the directory containing the config file and made
// absolute.
//
// The returned config is neither defaulted nor validated; callers merge
// overrides first, then call ApplyDefaults and Validate.
func LoadConfig(path string) (*HarnessConfig, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}

	env := EnvironmentMap(os.Environ())
	cfg.Command.Path = ProcessEnvironment(cfg.Command.Path, env)
	cfg.Command.Dir = ProcessEnvironment(cfg.Command.Dir, env)
	cfg.Command.ArgString = ProcessEnvironment(cfg.Command.ArgString, env)
	for i, arg := range cfg.Command.Args {
		cfg.Command.Args[i] = ProcessEnvironment(arg, env)
	}

	dir := GetConfigDir(path)
	cfg.Command.Path = resolveRelative(dir, cfg.Command.Path)
	cfg.Command.Dir = resolveRelative(dir, cfg.Command.Dir)

	return cfg, nil
}

// ParseConfig parses configuration data.
//
// The format is determined by the file extension in path, or defaults to
// YAML if the path is empty or has an unknown extension.
func ParseConfig(data []byte, path string) (*HarnessConfig, error) {
	var raw interface{}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	// Round-trip through JSON so YAML and JSON documents reach the schema
	// validator and the decoder with identical types.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	if err := validateSchema(normalized); err != nil {
		return nil, err
	}

	var cfg HarnessConfig
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// ProcessEnvironment replaces {{NAME}} placeholders in a string.
func ProcessEnvironment(input string, env map[string]string) string {
	if !strings.Contains(input, "{{") {
		return input
	}

	result := input
	for key, value := range env {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}

	return result
}

// EnvironmentMap converts KEY=VALUE pairs into a map.
func EnvironmentMap(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			result[key] = value
		}
	}
	return result
}

// GetConfigDir returns the directory containing the config file
func GetConfigDir(configPath string) string {
	return filepath.Dir(configPath)
}

// resolveRelative anchors a relative path at dir and makes it absolute, so
// a command path stays correct when the child runs in a different working
// directory. Bare command names (no separator) are left alone so they are
// still looked up in PATH.
func resolveRelative(dir, p string) string {
	if p == "" || filepath.IsAbs(p) || !strings.ContainsRune(filepath.ToSlash(p), '/') {
		return p
	}
	joined := filepath.Join(dir, p)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	return abs
}
