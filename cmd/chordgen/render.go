package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/config"
	"github.com/alexisbeaulieu97/chordgen/internal/layout"
	"github.com/alexisbeaulieu97/chordgen/internal/output"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
)

type renderOptions struct {
	Frets      string
	Title      string
	Suffix     string
	Theme      string
	Barres     []int
	Background bool
	Left       bool
	OutDir     string
	StylePath  string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single chord diagram",
		Example: `  chordgen render --frets "-1,0,2,2,2,0" --title A
  chordgen render --frets x35553 --title C --barre 3 --out diagrams`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			c, engine, err := buildSingleChord(opts)
			if err != nil {
				return newCommandError("render chord", opts.Frets, err, "Check the fret list has one entry per string and barres sit on fretted notes")
			}

			if strings.TrimSpace(opts.OutDir) == "" {
				return printDiagram(cmd.OutOrStdout(), engine, c, opts)
			}

			id, err := output.NewWriter(engine, opts.OutDir, log).Write(c)
			if err != nil {
				return newCommandError("write diagram", opts.OutDir, err, "Ensure the output directory exists and is writable")
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Frets, "frets", "", `Fret per string, e.g. "-1,0,2,2,2,0" or "x02220"`)
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chord root, e.g. C or Bb")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "Chord quality, e.g. m7b5")
	cmd.Flags().StringVar(&opts.Theme, "theme", palette.ThemeLight.String(), fmt.Sprintf("Color theme (%s)", strings.Join(palette.Names(), ", ")))
	cmd.Flags().IntSliceVar(&opts.Barres, "barre", nil, "Barre fret, repeatable")
	cmd.Flags().BoolVar(&opts.Background, "background", false, "Fill the diagram background")
	cmd.Flags().BoolVar(&opts.Left, "left", false, "Draw for a left-handed player")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Write <id>.svg into this directory instead of stdout")
	cmd.Flags().StringVar(&opts.StylePath, "style", "", "YAML file overriding the diagram style")
	cmd.MarkFlagRequired("frets") //nolint:errcheck

	return cmd
}

// printDiagram writes the rendered document of c to out.
func printDiagram(out io.Writer, r output.Renderer, c chord.Chord, opts renderOptions) error {
	doc, err := r.Render(c)
	if err != nil {
		return newCommandError("render chord", opts.Frets, err, "Check the style file produces a valid diagram")
	}
	fmt.Fprint(out, doc)
	return nil
}

func buildSingleChord(opts renderOptions) (chord.Chord, *layout.Engine, error) {
	style := layout.DefaultStyle()
	if strings.TrimSpace(opts.StylePath) != "" {
		loaded, err := config.ParseStyle(opts.StylePath)
		if err != nil {
			return chord.Chord{}, nil, err
		}
		style = loaded
	}

	frets, err := chord.ParseFrets(opts.Frets)
	if err != nil {
		return chord.Chord{}, nil, err
	}
	theme, err := palette.ParseTheme(opts.Theme)
	if err != nil {
		return chord.Chord{}, nil, err
	}
	hand := chord.HandRight
	if opts.Left {
		hand = chord.HandLeft
	}

	c, err := chord.New(chord.Spec{
		Frets:         frets,
		Title:         opts.Title,
		Suffix:        opts.Suffix,
		Theme:         theme,
		Barres:        opts.Barres,
		UseBackground: opts.Background,
		Hand:          hand,
	}, style.Instrument)
	if err != nil {
		return chord.Chord{}, nil, err
	}

	engine, err := layout.NewEngine(style, nil)
	if err != nil {
		return chord.Chord{}, nil, err
	}
	return c, engine, nil
}
