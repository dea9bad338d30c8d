package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chordgen/internal/palette"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			nameStyle := lipgloss.NewStyle().Bold(true).Width(10)
			for _, theme := range palette.Themes() {
				colors := palette.For(theme)
				swatch := lipgloss.NewStyle().
					Foreground(colors.Foreground).
					Background(colors.Background).
					Padding(0, 1).
					Render("♪ Am7")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  fg %s  bg %s\n", nameStyle.Render(theme.String()), swatch, colors.Foreground, colors.Background)
			}
			return nil
		},
	}

	return cmd
}
