package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chordgen/internal/logger"
	"github.com/alexisbeaulieu97/chordgen/internal/output"
)

var errDrift = errors.New("rendered diagrams are out of date")

type checkOptions struct {
	ConfigPath string
	OutDir     string
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report chord diagrams that are missing or differ from the book",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.ConfigPath) == "" {
				return fmt.Errorf("chord book path is required")
			}
			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runCheck(opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the chord book")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Directory holding rendered <id>.svg files")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("out")    //nolint:errcheck

	return cmd
}

func runCheck(opts checkOptions, out io.Writer, log *logger.Logger) error {
	_, jobs, writer, err := loadBook(opts.ConfigPath, opts.OutDir, log)
	if err != nil {
		return err
	}

	var stale []string
	for _, job := range jobs {
		res, err := writer.Check(job.Chord)
		if err != nil {
			return newCommandError("check diagram", job.ID, err, "Ensure the output directory is readable")
		}

		fmt.Fprintf(out, "%-12s %s %s\n", res.Status, job.ID, res.Path)
		switch res.Status {
		case output.StatusMissing:
			stale = append(stale, job.ID)
		case output.StatusDrifted:
			stale = append(stale, job.ID)
			fmt.Fprintln(out, res.Diff)
		}
	}

	if len(stale) > 0 {
		return newCommandError("check diagrams", opts.OutDir, fmt.Errorf("%w: %s", errDrift, strings.Join(stale, ", ")), "Run chordgen book with the same chord book to refresh them")
	}
	fmt.Fprintf(out, "%d diagrams up to date\n", len(jobs))
	return nil
}
