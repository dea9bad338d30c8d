package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/layout"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

const validBook = `version: "1.0"
name: "Open chords"
settings:
  parallel: 2
style:
  rows: 4
chords:
  - id: c_major
    title: C
    suffix: maj
    frets: [-1, 3, 2, 0, 1, 0]
    theme: dark
  - id: c-barre-3
    title: C
    frets: [-1, 3, 5, 5, 5, 3]
    barres: [3]
    hand: left
    background: false
`

func TestParseBook(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, book *Book, err error)
	}{
		{
			name:     "valid book is parsed",
			contents: validBook,
			assert: func(t *testing.T, book *Book, err error) {
				require.NoError(t, err)
				require.Equal(t, "Open chords", book.Name)
				require.Len(t, book.Chords, 2)
				require.Equal(t, 2, book.Settings.Parallel)
				require.Equal(t, 4, book.Style.Rows)
				// untouched style keys keep their defaults
				require.Equal(t, layout.DefaultStyle().StringSpacing, book.Style.StringSpacing)
				require.Equal(t, 6, book.Style.Strings)
				require.True(t, book.Chords[0].UseBackground())
				require.False(t, book.Chords[1].UseBackground())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "version: \"1.0\"\nchords:\n  - id: [oops\n",
			assert: func(t *testing.T, book *Book, err error) {
				var parseErr *chorderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "wrong type returns parse error",
			contents: "version: \"1.0\"\nname: x\nchords:\n  - id: a\n    frets: oops\n",
			assert: func(t *testing.T, book *Book, err error) {
				var parseErr *chorderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "missing chords returns validation error",
			contents: "version: \"1.0\"\nname: empty\n",
			assert: func(t *testing.T, book *Book, err error) {
				var validationErr *chorderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "chords", validationErr.Field)
			},
		},
		{
			name:     "bad schema version",
			contents: "version: beta\nname: x\nchords:\n  - id: a\n    frets: [0,0,0,0,0,0]\n",
			assert: func(t *testing.T, book *Book, err error) {
				var validationErr *chorderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			book, err := ParseBook(writeTempBook(t, tc.contents))
			tc.assert(t, book, err)
		})
	}
}

func TestParseBookMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseBook(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *chorderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateBookFieldErrors(t *testing.T) {
	t.Parallel()

	base := func() Book {
		book := DefaultBook()
		book.Version = "1.0"
		book.Name = "book"
		book.Chords = []Entry{{ID: "a_major", Frets: []int{-1, 0, 2, 2, 2, 0}}}
		return book
	}

	tests := []struct {
		name      string
		mutate    func(b *Book)
		wantField string
	}{
		{"bad chord id", func(b *Book) { b.Chords[0].ID = "A Major" }, "chords[0].id"},
		{"fret below muted", func(b *Book) { b.Chords[0].Frets[1] = -3 }, "chords[0].frets[1]"},
		{"unknown theme", func(b *Book) { b.Chords[0].Theme = "neon" }, "chords[0].theme"},
		{"unknown hand", func(b *Book) { b.Chords[0].Hand = "both" }, "chords[0].hand"},
		{"zero barre", func(b *Book) { b.Chords[0].Barres = []int{0} }, "chords[0].barres[0]"},
		{"style out of range", func(b *Book) { b.Style.Rows = 0 }, "style.rows"},
		{"string count out of range", func(b *Book) { b.Style.Strings = 0 }, "style.strings"},
		{"parallel out of range", func(b *Book) { b.Settings.Parallel = 1000 }, "settings.parallel"},
		{"wrong string count", func(b *Book) { b.Chords[0].Frets = []int{0, 2, 2, 2, 0} }, "chords[0].frets"},
		{"barre below lowest fret", func(b *Book) { b.Chords[0].Barres = []int{1} }, "chords[0].barres[0]"},
		{"duplicate ids", func(b *Book) {
			b.Chords = append(b.Chords, Entry{ID: "a_major", Frets: []int{0, 0, 0, 0, 0, 0}})
		}, "chords[1].id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			book := base()
			tt.mutate(&book)
			err := ValidateBook(&book)
			var validationErr *chorderrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	require.Error(t, ValidateBook(nil))
	ok := base()
	require.NoError(t, ValidateBook(&ok))
}

func TestBuildProducesChordsInOrder(t *testing.T) {
	t.Parallel()

	book, err := Parse([]byte(validBook), "inline.yaml")
	require.NoError(t, err)

	chords, err := book.Build()
	require.NoError(t, err)
	require.Len(t, chords, 2)

	require.Equal(t, "c_major", chords[0].ID)
	require.Equal(t, palette.ThemeDark, chords[0].Chord.Theme())
	require.Equal(t, chord.HandRight, chords[0].Chord.Hand())

	require.Equal(t, "c-barre-3", chords[1].ID)
	require.Equal(t, []int{3}, chords[1].Chord.Barres())
	require.Equal(t, chord.HandLeft, chords[1].Chord.Hand())
	require.False(t, chords[1].Chord.UseBackground())
}

func TestBookWithCustomStringCount(t *testing.T) {
	t.Parallel()

	contents := `version: "1.0"
name: ukulele
style:
  strings: 4
  max_fret: 15
chords:
  - id: c
    frets: [0, 0, 0, 3]
`
	book, err := Parse([]byte(contents), "uke.yaml")
	require.NoError(t, err)
	require.Equal(t, 4, book.Style.Strings)
	require.Equal(t, 15, book.Style.MaxFret)

	chords, err := book.Build()
	require.NoError(t, err)
	require.Equal(t, 4, chords[0].Chord.Strings())
}

func writeTempBook(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "ukulele.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strings: 4\nmax_fret: 18\nstring_spacing: 30\n"), 0o644))
	style, err := ParseStyle(path)
	require.NoError(t, err)
	require.Equal(t, 4, style.Strings)
	require.Equal(t, 18, style.MaxFret)
	require.Equal(t, 30, style.StringSpacing)
	require.Equal(t, layout.DefaultStyle().FretSpacing, style.FretSpacing)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: 0\n"), 0o644))
	_, err = ParseStyle(bad)
	var validationErr *chorderrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "style.rows", validationErr.Field)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("rows: [\n"), 0o644))
	_, err = ParseStyle(broken)
	var parseErr *chorderrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = ParseStyle(filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &parseErr)
}
