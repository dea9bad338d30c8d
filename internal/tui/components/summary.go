package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Total     int
	Completed int
	Succeeded int
	Failed    int
	Skipped   int
	Finished  bool
	Cancelled bool
}

// Summary renders a textual batch summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Chords: %d/%d completed", s.data.Completed, s.data.Total))
	}

	if s.data.Succeeded > 0 || s.data.Failed > 0 || s.data.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Rendered: %d  Failed: %d  Skipped: %d", s.data.Succeeded, s.data.Failed, s.data.Skipped))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Rendering cancelled")
	case !s.data.Finished || s.data.Total == 0:
	case s.data.Failed > 0:
		lines = append(lines, "Rendering finished with failures")
	case s.data.Completed == s.data.Total:
		lines = append(lines, "Rendering finished successfully")
	default:
		lines = append(lines, "Rendering finished with pending chords")
	}

	return strings.Join(lines, "\n")
}
