package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chordgen/internal/batch"
	"github.com/alexisbeaulieu97/chordgen/internal/tui/components"
)

// ChordStartMsg indicates a chord has been picked up by a worker.
type ChordStartMsg struct {
	ID   string
	Time time.Time
}

// ChordDoneMsg reports that a chord finished rendering.
type ChordDoneMsg struct {
	Result batch.Result
}

// BatchDoneMsg is sent once the whole book has been processed.
type BatchDoneMsg struct {
	Err error
}

type tickMsg struct{}

// Model contains the Bubbletea state for the chord book progress view.
type Model struct {
	name      string
	results   map[string]batch.Result
	order     []string
	total     int
	completed int
	finished  bool
	cancelled bool
	err       error
}

// NewModel constructs a model tracking the given chord ids in book order.
func NewModel(name string, ids []string) Model {
	m := Model{
		name:    name,
		results: make(map[string]batch.Result, len(ids)),
		order:   make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		m.ensureChord(id)
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// Total returns the number of chords tracked by the model.
func (m Model) Total() int {
	return m.total
}

// Completed returns the number of chords that reached a terminal status.
func (m Model) Completed() int {
	return m.completed
}

// IsFinished reports whether the batch has completed or was cancelled.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the run.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the batch error, if any.
func (m Model) Err() error {
	return m.err
}

// Summary returns the batch summary for the chords seen so far.
func (m Model) Summary() components.SummaryData {
	data := components.SummaryData{
		Total:     m.total,
		Completed: m.completed,
		Finished:  m.finished,
		Cancelled: m.cancelled,
	}
	for _, id := range m.order {
		switch m.results[id].Status {
		case batch.StatusSucceeded:
			data.Succeeded++
		case batch.StatusFailed:
			data.Failed++
		case batch.StatusCancelled:
			data.Skipped++
		}
	}
	return data
}

func (m *Model) ensureChord(id string) {
	if id == "" {
		return
	}
	if _, exists := m.results[id]; !exists {
		m.results[id] = batch.Result{JobID: id, Status: batch.StatusPending}
		m.order = append(m.order, id)
		m.total++
	}
}

func isTerminal(status batch.Status) bool {
	return status == batch.StatusSucceeded || status == batch.StatusFailed || status == batch.StatusCancelled
}
