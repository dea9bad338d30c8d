// Package palette maps diagram themes to the colors used when drawing them.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// Theme selects one of the built-in palettes.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
	ThemeSepia
	ThemeContrast
)

// Palette holds the colors of a single theme. Colors are hex strings so they
// can be dropped into SVG attributes and terminal styles alike.
type Palette struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
}

var palettes = map[Theme]Palette{
	ThemeLight:    {Foreground: "#1a1a1a", Background: "#ffffff"},
	ThemeDark:     {Foreground: "#f2f2f2", Background: "#1e1f22"},
	ThemeSepia:    {Foreground: "#5b4636", Background: "#f4ecd8"},
	ThemeContrast: {Foreground: "#000000", Background: "#ffff00"},
}

var themeNames = map[Theme]string{
	ThemeLight:    "light",
	ThemeDark:     "dark",
	ThemeSepia:    "sepia",
	ThemeContrast: "contrast",
}

func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("theme(%d)", int(t))
}

// Valid reports whether t names a built-in palette.
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

// ParseTheme resolves a theme name. An empty name selects the light theme.
func ParseTheme(name string) (Theme, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ThemeLight, nil
	}
	for theme, themeName := range themeNames {
		if themeName == normalized {
			return theme, nil
		}
	}
	return ThemeLight, chorderrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q (want one of %s)", name, strings.Join(Names(), ", ")), nil)
}

// For returns the palette for theme. Unknown themes fall back to light;
// callers are expected to have gone through ParseTheme.
func For(theme Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// Names lists the theme names in declaration order.
func Names() []string {
	themes := Themes()
	names := make([]string, 0, len(themes))
	for _, theme := range themes {
		names = append(names, theme.String())
	}
	return names
}

// Themes lists the built-in themes in declaration order.
func Themes() []Theme {
	themes := make([]Theme, 0, len(palettes))
	for theme := range palettes {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })
	return themes
}

// MarshalText encodes the theme by name.
func (t Theme) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a theme name.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
