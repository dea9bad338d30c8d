package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chordgen/internal/batch"
)

func TestNewModelTracksChordsInOrder(t *testing.T) {
	t.Parallel()

	m := NewModel("book", []string{"c_major", "", "a_minor", "c_major"})
	require.Equal(t, 2, m.Total())
	require.Equal(t, []string{"c_major", "a_minor"}, m.order)
	require.Equal(t, batch.StatusPending, m.results["a_minor"].Status)
	require.False(t, m.IsFinished())
	require.NotNil(t, m.Init())
}

func TestSummaryCountsStatuses(t *testing.T) {
	t.Parallel()

	m := NewModel("book", []string{"a", "b", "c", "d"})
	m.results["a"] = batch.Result{JobID: "a", Status: batch.StatusSucceeded}
	m.results["b"] = batch.Result{JobID: "b", Status: batch.StatusFailed}
	m.results["c"] = batch.Result{JobID: "c", Status: batch.StatusCancelled}
	m.completed = 3

	s := m.Summary()
	require.Equal(t, 4, s.Total)
	require.Equal(t, 3, s.Completed)
	require.Equal(t, 1, s.Succeeded)
	require.Equal(t, 1, s.Failed)
	require.Equal(t, 1, s.Skipped)
}
