package config

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// ValidateBook performs schema and cross-field validation on an entire book.
func ValidateBook(book *Book) error {
	if book == nil {
		return chorderrors.NewValidationError("book", "book is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(book); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(book.Chords))
	for i, entry := range book.Chords {
		if first, exists := seen[entry.ID]; exists {
			return chorderrors.NewValidationError(fieldForChord(i, "id"), fmt.Sprintf("duplicate chord id %q (first used by chords[%d])", entry.ID, first), nil)
		}
		seen[entry.ID] = i

		if _, err := buildChord(entry, book); err != nil {
			return chordError(i, err)
		}
	}

	return nil
}

// Build turns every entry into a validated chord, in book order.
func (b *Book) Build() ([]NamedChord, error) {
	out := make([]NamedChord, 0, len(b.Chords))
	for i, entry := range b.Chords {
		c, err := buildChord(entry, b)
		if err != nil {
			return nil, chordError(i, err)
		}
		out = append(out, NamedChord{ID: entry.ID, Chord: c})
	}
	return out, nil
}

func buildChord(entry Entry, book *Book) (chord.Chord, error) {
	theme, err := palette.ParseTheme(entry.Theme)
	if err != nil {
		return chord.Chord{}, err
	}
	hand, err := chord.ParseHand(entry.Hand)
	if err != nil {
		return chord.Chord{}, err
	}

	return chord.New(chord.Spec{
		Frets:         entry.Frets,
		Title:         entry.Title,
		Suffix:        entry.Suffix,
		Theme:         theme,
		Barres:        entry.Barres,
		UseBackground: entry.UseBackground(),
		Hand:          hand,
	}, book.Style.Instrument)
}

// chordError rewrites a chord construction failure so its field points into
// the book.
func chordError(index int, err error) error {
	var inputErr *chorderrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return chorderrors.NewValidationError(fieldForChord(index, inputErr.Field), inputErr.Message, err)
	}
	var validationErr *chorderrors.ValidationError
	if errors.As(err, &validationErr) {
		return chorderrors.NewValidationError(fieldForChord(index, validationErr.Field), validationErr.Message, err)
	}
	return chorderrors.NewValidationError(fmt.Sprintf("chords[%d]", index), err.Error(), err)
}
