package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/config"
)

func makeJobs(t *testing.T, n int) []config.NamedChord {
	t.Helper()

	jobs := make([]config.NamedChord, n)
	for i := range jobs {
		c, err := chord.New(chord.Spec{Frets: []int{-1, 0, 2, 2, 2, i % 5}}, chord.DefaultInstrument())
		require.NoError(t, err)
		jobs[i] = config.NamedChord{ID: fmt.Sprintf("chord_%02d", i), Chord: c}
	}
	return jobs
}

func TestRunReturnsResultsInJobOrder(t *testing.T) {
	t.Parallel()

	jobs := makeJobs(t, 12)
	var inFlight, peak int32

	results, err := Run(context.Background(), jobs, func(job config.NamedChord) (string, error) {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return "out-" + job.ID, nil
	}, Options{Parallel: 3})

	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, res := range results {
		require.Equal(t, jobs[i].ID, res.JobID)
		require.Equal(t, "out-"+jobs[i].ID, res.Output)
		require.Equal(t, StatusSucceeded, res.Status)
	}
	require.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	require.Equal(t, Summary{Total: 12, Succeeded: 12}, Summarize(results))
}

func TestRunCancelsRemainingJobsOnFailure(t *testing.T) {
	t.Parallel()

	jobs := makeJobs(t, 6)
	boom := errors.New("boom")

	results, err := Run(context.Background(), jobs, func(config.NamedChord) (string, error) {
		return "", boom
	}, Options{Parallel: 1})

	require.ErrorIs(t, err, boom)
	summary := Summarize(results)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 5, summary.Cancelled)
	require.Equal(t, 0, summary.Succeeded)
}

func TestRunContinueOnError(t *testing.T) {
	t.Parallel()

	jobs := makeJobs(t, 5)
	boom := errors.New("boom")

	results, err := Run(context.Background(), jobs, func(job config.NamedChord) (string, error) {
		if job.ID == "chord_02" {
			return "", boom
		}
		return job.ID, nil
	}, Options{Parallel: 2, ContinueOnError: true})

	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "chord_02")
	require.Equal(t, StatusFailed, results[2].Status)
	require.Equal(t, Summary{Total: 5, Succeeded: 4, Failed: 1}, Summarize(results))
}

func TestRunHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	results, err := Run(ctx, makeJobs(t, 4), func(config.NamedChord) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	}, Options{})

	require.NoError(t, err)
	require.Zero(t, atomic.LoadInt32(&calls))
	require.Equal(t, 4, Summarize(results).Cancelled)
}

func TestRunReportsEveryResult(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[string]Status{}

	_, err := Run(context.Background(), makeJobs(t, 7), func(job config.NamedChord) (string, error) {
		return job.ID, nil
	}, Options{Parallel: 4, OnResult: func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		seen[r.JobID] = r.Status
	}})

	require.NoError(t, err)
	require.Len(t, seen, 7)
	for _, status := range seen {
		require.Equal(t, StatusSucceeded, status)
	}
}

func TestRunRejectsNilFunc(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), makeJobs(t, 1), nil, Options{})
	require.Error(t, err)
}
