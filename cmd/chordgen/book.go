package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/chordgen/internal/batch"
	"github.com/alexisbeaulieu97/chordgen/internal/config"
	"github.com/alexisbeaulieu97/chordgen/internal/layout"
	"github.com/alexisbeaulieu97/chordgen/internal/logger"
	"github.com/alexisbeaulieu97/chordgen/internal/output"
	"github.com/alexisbeaulieu97/chordgen/internal/publish"
	"github.com/alexisbeaulieu97/chordgen/internal/tui"
)

type bookOptions struct {
	ConfigPath      string
	OutDir          string
	Parallel        int
	ContinueOnError bool
	Commit          bool
	Message         string
	Interactive     bool
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newBookCmd(root *rootFlags) *cobra.Command {
	opts := bookOptions{}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Render every chord of a chord book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateBookOptions(opts); err != nil {
				return err
			}
			opts.Interactive = isTerminal()

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runBook(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the chord book")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Directory receiving <id>.svg files")
	cmd.Flags().IntVarP(&opts.Parallel, "parallel", "p", 0, "Number of chords rendered at once (defaults to the book setting)")
	cmd.Flags().BoolVar(&opts.ContinueOnError, "continue-on-error", false, "Keep rendering after a chord fails")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit rendered diagrams to the enclosing git repository")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Commit message used with --commit")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("out")    //nolint:errcheck

	return cmd
}

func validateBookOptions(opts bookOptions) error {
	if strings.TrimSpace(opts.ConfigPath) == "" {
		return fmt.Errorf("chord book path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return fmt.Errorf("output directory is required")
	}
	if opts.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", opts.Parallel)
	}
	return nil
}

// loadBook parses the chord book and prepares the engine and writer shared by
// book and check.
func loadBook(path, outDir string, log *logger.Logger) (*config.Book, []config.NamedChord, *output.Writer, error) {
	book, err := config.ParseBook(path)
	if err != nil {
		return nil, nil, nil, newCommandError("load chord book", path, err, "Fix the reported field and run the command again")
	}
	jobs, err := book.Build()
	if err != nil {
		return nil, nil, nil, newCommandError("load chord book", path, err, "Fix the reported field and run the command again")
	}
	engine, err := layout.NewEngine(book.Style, nil)
	if err != nil {
		return nil, nil, nil, newCommandError("prepare style", path, err, "Check the style section of the chord book")
	}
	return book, jobs, output.NewWriter(engine, outDir, log), nil
}

func runBook(ctx context.Context, opts bookOptions, out io.Writer, log *logger.Logger) error {
	book, jobs, writer, err := loadBook(opts.ConfigPath, opts.OutDir, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = book.Settings.Parallel
	}

	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}
	state := tui.NewModel(book.Name, ids)

	var program *tea.Program
	var programErr error
	done := make(chan struct{})
	if opts.Interactive {
		program = tea.NewProgram(state, tea.WithOutput(out), tea.WithContext(ctx))
		go func() {
			defer close(done)
			final, err := program.Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				programErr = err
			}
			if m, ok := final.(tui.Model); ok && m.Cancelled() {
				cancel()
			}
		}()
	}

	render := func(job config.NamedChord) (string, error) {
		if program != nil {
			program.Send(tui.ChordStartMsg{ID: job.ID, Time: time.Now()})
		}
		return writer.Write(job.Chord)
	}

	results, runErr := batch.Run(ctx, jobs, render, batch.Options{
		Parallel:        parallel,
		ContinueOnError: opts.ContinueOnError || book.Settings.ContinueOnError,
		Logger:          log,
		OnResult: func(res batch.Result) {
			if program != nil {
				program.Send(tui.ChordDoneMsg{Result: res})
			}
		},
	})

	if program != nil {
		program.Send(tui.BatchDoneMsg{Err: runErr})
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		for _, res := range results {
			updated, _ := state.Update(tui.ChordDoneMsg{Result: res})
			state = updated.(tui.Model)
		}
		updated, _ := state.Update(tui.BatchDoneMsg{Err: runErr})
		state = updated.(tui.Model)
		fmt.Fprintln(out, state.View())
	}

	summary := batch.Summarize(results)
	log.Info("chord book rendered", logger.Fields{
		"book":      book.Name,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"cancelled": summary.Cancelled,
	})

	if runErr != nil {
		return newCommandError("render chord book", opts.ConfigPath, runErr, "Fix the failing chord or rerun with --continue-on-error")
	}

	if opts.Commit {
		return commitRendered(ctx, opts, book, writer, results, out, log)
	}
	return nil
}

func commitRendered(ctx context.Context, opts bookOptions, book *config.Book, writer *output.Writer, results []batch.Result, out io.Writer, log *logger.Logger) error {
	paths := make([]string, 0, len(results))
	for _, res := range results {
		if res.Status == batch.StatusSucceeded {
			paths = append(paths, writer.Path(res.Output))
		}
	}

	pub, err := publish.Open(opts.OutDir, publish.Options{}, log)
	if err != nil {
		return newCommandError("commit diagrams", opts.OutDir, err, "Run git init in a parent directory or drop --commit")
	}

	message := opts.Message
	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("Render chord book %q", book.Name)
	}

	hash, err := pub.Commit(ctx, paths, message)
	switch {
	case errors.Is(err, publish.ErrNothingToCommit):
		fmt.Fprintln(out, "diagrams already committed")
		return nil
	case err != nil:
		return newCommandError("commit diagrams", pub.Root(), err, "Check the repository state with git status")
	}
	fmt.Fprintf(out, "committed %s\n", hash)
	return nil
}
