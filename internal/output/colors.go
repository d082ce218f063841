package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Label  *color.Color
	Value  *color.Color
	Median *color.Color
	Warn   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:  color.New(color.FgCyan),
		Value:  color.New(color.FgWhite, color.Bold),
		Median: color.New(color.FgGreen, color.Bold),
		Warn:   color.New(color.FgYellow),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Median.DisableColor()
	scheme.Warn.DisableColor()

	return scheme
}

// SchemeFor returns DefaultColorScheme with colors forced on, or
// NoColorScheme.
func SchemeFor(useColor bool) *ColorScheme {
	if !useColor {
		return NoColorScheme()
	}
	scheme := DefaultColorScheme()
	// fatih/color decides on its own whether stdout is a terminal; the caller
	// has already made that decision for the writer actually used.
	scheme.Label.EnableColor()
	scheme.Value.EnableColor()
	scheme.Median.EnableColor()
	scheme.Warn.EnableColor()
	return scheme
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
