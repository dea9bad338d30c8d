package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chordgen/internal/batch"
)

// StatusRunning marks a chord a worker is currently rendering.
const StatusRunning batch.Status = "running"

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case ChordStartMsg:
		m.ensureChord(msg.ID)
		res := m.results[msg.ID]
		if !isTerminal(res.Status) {
			res.Status = StatusRunning
			m.results[msg.ID] = res
		}
		return m, nil
	case ChordDoneMsg:
		id := msg.Result.JobID
		if id == "" {
			return m, nil
		}
		m.ensureChord(id)
		previouslyCompleted := isTerminal(m.results[id].Status)
		m.results[id] = msg.Result
		if !previouslyCompleted {
			m.completed++
		}
		return m, nil
	case BatchDoneMsg:
		m.err = msg.Err
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
