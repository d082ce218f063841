package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Summary describes a finished or interrupted run.
type Summary struct {
	RunID       string
	Command     string
	Median      string
	Iterations  int
	LastElapsed time.Duration
	MedianValue time.Duration
	WallTime    time.Duration
}

// WriteSummary renders s as a two-column table.
func WriteSummary(w io.Writer, s Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	rows := [][]string{
		{"Run ID", s.RunID},
		{"Command", s.Command},
		{"Iterations", formatNumber(int64(s.Iterations))},
	}
	if s.Iterations > 0 {
		rows = append(rows,
			[]string{"Last Elapsed", formatSeconds(s.LastElapsed) + " s"},
			[]string{"Median", medianLabel(s)},
		)
	} else {
		rows = append(rows,
			[]string{"Last Elapsed", "-"},
			[]string{"Median", "-"},
		)
	}
	rows = append(rows, []string{"Wall Time", formatDuration(s.WallTime)})

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add summary row %q: %w", row[0], err)
		}
	}
	return table.Render()
}

func medianLabel(s Summary) string {
	v := formatSeconds(s.MedianValue) + " s"
	if s.Median != "" {
		v += " (" + s.Median + ")"
	}
	return v
}

// formatDuration formats a duration in a human-readable format.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
}

// formatNumber formats a number with thousands separators.
func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	offset := len(str) % 3
	if offset > 0 {
		result.WriteString(str[:offset])
	}
	for i := offset; i < len(str); i += 3 {
		if result.Len() > 0 {
			result.WriteString(",")
		}
		result.WriteString(str[i : i+3])
	}
	return result.String()
}
