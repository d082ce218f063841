package config

import (
	"bytes"
	"fmt"
	"net"
	"strings"

	"github.com/wesleyorama2/benchloop/internal/launcher"
	"github.com/wesleyorama2/benchloop/internal/samples"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Path, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(path, message string) {
	e.Errors = append(e.Errors, &ValidationError{Path: path, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the harness configuration.
//
// Returns nil if valid, or a *ValidationErrors containing every problem.
func (c *HarnessConfig) Validate() error {
	errs := &ValidationErrors{}

	validateCommand(&c.Command, errs)

	switch samples.Mode(c.Median) {
	case samples.ModeExact, samples.ModeHistogram:
	default:
		errs.Add("median", fmt.Sprintf("must be %q or %q, got %q", samples.ModeExact, samples.ModeHistogram, c.Median))
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs.Add("format", fmt.Sprintf("must be %q or %q, got %q", FormatText, FormatJSON, c.Format))
	}

	if c.Count < 0 {
		errs.Add("count", "must be >= 0 (0 runs forever)")
	}

	if c.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
			errs.Add("metricsAddr", fmt.Sprintf("invalid listen address: %v", err))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateCommand(cmd *CommandConfig, errs *ValidationErrors) {
	if strings.TrimSpace(cmd.Path) == "" {
		errs.Add("command.path", "path is required")
	}

	if _, err := launcher.ParseDisposition(cmd.Output); err != nil {
		errs.Add("command.output", err.Error())
	}

	if len(cmd.Args) > 0 && cmd.ArgString != "" {
		errs.Add("command", "args and argString are mutually exclusive")
	}

	if cmd.ArgString != "" {
		if _, err := launcher.SplitArgs(cmd.ArgString); err != nil {
			errs.Add("command.argString", err.Error())
		}
	}
}

// validateSchema checks a normalized JSON document against the embedded
// harness schema.
func validateSchema(doc []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("invalid harness schema: %w", err)
	}

	v, err := decodeJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("invalid config document: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
