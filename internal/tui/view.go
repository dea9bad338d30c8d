package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chordgen/internal/batch"
	"github.com/alexisbeaulieu97/chordgen/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("chordgen • %s", m.title()))
	sections = append(sections, title)

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	entries := components.NewChordList(m.order, m.results).Entries()
	if len(entries) > 0 {
		sections = append(sections, sectionStyle.Render("Chords"))
		sections = append(sections, renderChordEntries(entries))
	}

	summary := components.NewSummary(m.Summary()).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderChordEntries(entries []components.ChordEntry) string {
	var lines []string
	for _, entry := range entries {
		res := entry.Result
		line := fmt.Sprintf(" %s %s", StatusIcon(res.Status), entry.ID)
		switch {
		case res.Err != nil && res.Status == batch.StatusFailed:
			line = fmt.Sprintf("%s: %s", line, res.Err)
		case res.Output != "":
			line = fmt.Sprintf("%s → %s", line, res.Output)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) title() string {
	if strings.TrimSpace(m.name) != "" {
		return m.name
	}
	return "chord book"
}

// StatusIcon returns the glyph representing a chord status.
func StatusIcon(status batch.Status) string {
	switch status {
	case batch.StatusSucceeded:
		return successStyle.Render("✓")
	case StatusRunning:
		return runningStyle.Render("⏳")
	case batch.StatusFailed:
		return failureStyle.Render("✗")
	case batch.StatusCancelled:
		return skippedStyle.Render("⊘")
	default:
		return pendingStyle.Render("…")
	}
}
