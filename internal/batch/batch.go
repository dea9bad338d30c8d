// Package batch renders many chords concurrently with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/chordgen/internal/config"
	"github.com/alexisbeaulieu97/chordgen/internal/logger"
)

// DefaultParallel is used when Options.Parallel is not positive.
const DefaultParallel = 4

// Status is the outcome of a single job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Result reports what happened to one job.
type Result struct {
	JobID    string
	Output   string
	Status   Status
	Err      error
	Duration time.Duration
}

// Func processes one chord and returns an identifier for what it produced,
// typically the file id of the written diagram.
type Func func(job config.NamedChord) (string, error)

// Options tunes a batch run.
type Options struct {
	Parallel        int
	ContinueOnError bool
	Logger          *logger.Logger
	// OnResult is called from worker goroutines as jobs finish. It must be
	// safe for concurrent use.
	OnResult func(Result)
}

// Run applies fn to every job using at most opts.Parallel workers. Results
// are returned in job order. Unless ContinueOnError is set, the first
// failure cancels jobs that have not started yet and is returned.
func Run(ctx context.Context, jobs []config.NamedChord, fn Func, opts Options) ([]Result, error) {
	if fn == nil {
		return nil, fmt.Errorf("batch function is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	pool := make(chan struct{}, parallel)
	results := make([]Result, len(jobs))
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for idx, job := range jobs {
		results[idx] = Result{JobID: job.ID, Status: StatusPending}

		wg.Add(1)
		go func(idx int, job config.NamedChord) {
			defer wg.Done()

			var res Result
			select {
			case pool <- struct{}{}:
				res = runJob(ctx, job, fn)
				if res.Status == StatusFailed {
					once.Do(func() {
						firstErr = fmt.Errorf("chord %s: %w", job.ID, res.Err)
						if !opts.ContinueOnError {
							cancel()
						}
					})
				}
				// The slot is released only after a failure has cancelled
				// the run, so queued jobs observe the cancellation.
				<-pool
			case <-ctx.Done():
				res = Result{JobID: job.ID, Status: StatusCancelled, Err: ctx.Err()}
			}
			results[idx] = res

			switch res.Status {
			case StatusFailed:
				log.Error(res.Err, "chord failed", logger.Fields{"chord": job.ID})
			case StatusSucceeded:
				log.Debug("chord rendered", logger.Fields{"chord": job.ID, "output": res.Output, "duration": res.Duration.String()})
			}

			if opts.OnResult != nil {
				opts.OnResult(res)
			}
		}(idx, job)
	}

	wg.Wait()
	return results, firstErr
}

func runJob(ctx context.Context, job config.NamedChord, fn Func) Result {
	if err := ctx.Err(); err != nil {
		return Result{JobID: job.ID, Status: StatusCancelled, Err: err}
	}

	start := time.Now()
	out, err := fn(job)
	res := Result{JobID: job.ID, Output: out, Duration: time.Since(start)}
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Status = StatusSucceeded
	return res
}

// Summary counts results by status.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Cancelled int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusSucceeded:
			s.Succeeded++
		case StatusFailed:
			s.Failed++
		case StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}
