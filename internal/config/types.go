package config

import (
	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/layout"
)

// Book is a chord book: a named collection of chords rendered with one style.
type Book struct {
	Version     string       `yaml:"version" validate:"required,schema_version"`
	Name        string       `yaml:"name" validate:"required,min=1,max=100"`
	Description string       `yaml:"description,omitempty"`
	Style       layout.Style `yaml:"style,omitempty"`
	Settings    Settings     `yaml:"settings,omitempty"`
	Chords      []Entry      `yaml:"chords" validate:"required,min=1,dive"`
}

// Settings holds batch rendering parameters.
type Settings struct {
	Parallel        int  `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=64"`
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`
}

// Entry describes one chord of the book.
type Entry struct {
	ID         string `yaml:"id" validate:"required,chord_id"`
	Title      string `yaml:"title,omitempty" validate:"max=32"`
	Suffix     string `yaml:"suffix,omitempty" validate:"max=32"`
	Frets      []int  `yaml:"frets" validate:"required,min=1,dive,fret"`
	Barres     []int  `yaml:"barres,omitempty" validate:"omitempty,dive,min=1"`
	Theme      string `yaml:"theme,omitempty" validate:"omitempty,theme"`
	Hand       string `yaml:"hand,omitempty" validate:"omitempty,hand"`
	Background *bool  `yaml:"background,omitempty"`
}

// NamedChord pairs a validated chord with the id it has in its book.
type NamedChord struct {
	ID    string
	Chord chord.Chord
}

// UseBackground reports whether the entry asks for a filled background. It
// defaults to true.
func (e Entry) UseBackground() bool {
	if e.Background == nil {
		return true
	}
	return *e.Background
}

// DefaultBook returns an empty book carrying the default style, ready to be
// decoded into.
func DefaultBook() Book {
	return Book{Style: layout.DefaultStyle()}
}
