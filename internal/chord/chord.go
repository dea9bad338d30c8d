// Package chord defines the immutable chord value rendered into diagrams.
package chord

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/chordgen/internal/palette"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

const (
	// Muted marks a string that is not sounded.
	Muted = -1
	// Open marks a string sounded without a fretting finger.
	Open = 0
)

// Instrument describes the neck a chord is written for.
type Instrument struct {
	Strings int `yaml:"strings" json:"strings" validate:"min=1,max=12"`
	MaxFret int `yaml:"max_fret" json:"max_fret" validate:"min=1,max=36"`
}

// DefaultInstrument is a six string guitar with 24 frets.
func DefaultInstrument() Instrument {
	return Instrument{Strings: 6, MaxFret: 24}
}

// Spec is the caller-facing description of a chord. It is turned into a
// Chord by New, which validates it.
type Spec struct {
	Frets         []int         `json:"frets"`
	Title         string        `json:"title,omitempty"`
	Suffix        string        `json:"suffix,omitempty"`
	Theme         palette.Theme `json:"theme"`
	Barres        []int         `json:"barres,omitempty"`
	UseBackground bool          `json:"background"`
	Hand          Hand          `json:"hand"`
}

// Chord is a validated, read-only chord. The zero value is not usable; build
// one with New.
type Chord struct {
	spec Spec
}

// New validates spec against inst and returns the resulting Chord. Slices
// are copied so later changes to spec do not leak into the chord.
func New(spec Spec, inst Instrument) (Chord, error) {
	if inst.Strings <= 0 {
		return Chord{}, chorderrors.NewInvalidInputError("instrument", fmt.Sprintf("string count must be positive, got %d", inst.Strings))
	}
	if len(spec.Frets) != inst.Strings {
		return Chord{}, chorderrors.NewInvalidInputError("frets", fmt.Sprintf("expected %d strings, got %d", inst.Strings, len(spec.Frets)))
	}

	for i, fret := range spec.Frets {
		if fret < Muted {
			return Chord{}, chorderrors.NewInvalidInputError(fmt.Sprintf("frets[%d]", i), fmt.Sprintf("fret %d is neither muted (-1), open (0) nor fretted", fret))
		}
		if inst.MaxFret > 0 && fret > inst.MaxFret {
			return Chord{}, chorderrors.NewInvalidInputError(fmt.Sprintf("frets[%d]", i), fmt.Sprintf("fret %d exceeds the instrument's %d frets", fret, inst.MaxFret))
		}
	}

	if !spec.Theme.Valid() {
		return Chord{}, chorderrors.NewInvalidInputError("theme", fmt.Sprintf("unknown %s", spec.Theme))
	}
	if !spec.Hand.Valid() {
		return Chord{}, chorderrors.NewInvalidInputError("hand", fmt.Sprintf("unknown %s", spec.Hand))
	}

	if err := validateBarres(spec.Frets, spec.Barres); err != nil {
		return Chord{}, err
	}

	out := spec
	out.Title = strings.TrimSpace(spec.Title)
	out.Suffix = strings.TrimSpace(spec.Suffix)
	out.Frets = append([]int(nil), spec.Frets...)
	out.Barres = nil
	if len(spec.Barres) > 0 {
		out.Barres = append([]int(nil), spec.Barres...)
	}

	return Chord{spec: out}, nil
}

func validateBarres(frets []int, barres []int) error {
	lowest := LowestFret(frets)
	seen := make(map[int]struct{}, len(barres))

	for i, barre := range barres {
		field := fmt.Sprintf("barres[%d]", i)
		if barre <= 0 {
			return chorderrors.NewInvalidInputError(field, fmt.Sprintf("barre fret must be positive, got %d", barre))
		}
		if _, dup := seen[barre]; dup {
			return chorderrors.NewInvalidInputError(field, fmt.Sprintf("duplicate barre at fret %d", barre))
		}
		seen[barre] = struct{}{}

		if lowest == 0 || barre < lowest {
			return chorderrors.NewInvalidInputError(field, fmt.Sprintf("barre at fret %d lies below the lowest fretted note", barre))
		}
		if !covers(frets, barre) {
			return chorderrors.NewInvalidInputError(field, fmt.Sprintf("barre at fret %d covers no fretted string", barre))
		}
	}
	return nil
}

func covers(frets []int, barre int) bool {
	for _, fret := range frets {
		if fret >= barre {
			return true
		}
	}
	return false
}

// LowestFret returns the smallest fretted position in frets, or 0 when no
// string is fretted.
func LowestFret(frets []int) int {
	lowest := 0
	for _, fret := range frets {
		if fret > 0 && (lowest == 0 || fret < lowest) {
			lowest = fret
		}
	}
	return lowest
}

// Frets returns a copy of the per-string fret values.
func (c Chord) Frets() []int {
	return append([]int(nil), c.spec.Frets...)
}

// Fret returns the value for string i.
func (c Chord) Fret(i int) int {
	return c.spec.Frets[i]
}

// Strings returns the number of strings the chord was validated for.
func (c Chord) Strings() int {
	return len(c.spec.Frets)
}

// Title returns the chord root, for example "C" or "Bb".
func (c Chord) Title() string { return c.spec.Title }

// Suffix returns the chord quality, for example "maj7".
func (c Chord) Suffix() string { return c.spec.Suffix }

// Theme returns the selected palette.
func (c Chord) Theme() palette.Theme { return c.spec.Theme }

// Hand returns the handedness.
func (c Chord) Hand() Hand { return c.spec.Hand }

// UseBackground reports whether the diagram gets a filled background.
func (c Chord) UseBackground() bool { return c.spec.UseBackground }

// Barres returns a copy of the barre frets.
func (c Chord) Barres() []int {
	return append([]int(nil), c.spec.Barres...)
}

// HasBarre reports whether at least one barre is drawn.
func (c Chord) HasBarre() bool {
	return len(c.spec.Barres) > 0
}

// Spec returns a copy of the validated description of the chord.
func (c Chord) Spec() Spec {
	out := c.spec
	out.Frets = c.Frets()
	if len(c.spec.Barres) > 0 {
		out.Barres = c.Barres()
	}
	return out
}
