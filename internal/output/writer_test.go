package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/layout"
	"github.com/alexisbeaulieu97/chordgen/internal/output"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

func newEngine(t *testing.T) *layout.Engine {
	t.Helper()

	engine, err := layout.NewEngine(layout.DefaultStyle(), nil)
	require.NoError(t, err)
	return engine
}

func cMajor(t *testing.T) chord.Chord {
	t.Helper()

	c, err := chord.New(chord.Spec{Frets: []int{-1, 3, 2, 0, 1, 0}, Title: "C", Suffix: "maj", UseBackground: true}, chord.DefaultInstrument())
	require.NoError(t, err)
	return c
}

func TestWriteStoresContentAddressedDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	engine := newEngine(t)
	w := output.NewWriter(engine, dir, nil)

	id, err := w.Write(cMajor(t))
	require.NoError(t, err)
	require.Len(t, id, 16)

	data, err := os.ReadFile(filepath.Join(dir, id+".svg"))
	require.NoError(t, err)

	want, err := engine.Render(cMajor(t))
	require.NoError(t, err)
	require.Equal(t, want, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestIdentifierIsStableAndContentSensitive(t *testing.T) {
	t.Parallel()

	first, err := output.Identifier(cMajor(t))
	require.NoError(t, err)
	second, err := output.Identifier(cMajor(t))
	require.NoError(t, err)
	require.Equal(t, first, second)

	dark, err := chord.New(chord.Spec{Frets: []int{-1, 3, 2, 0, 1, 0}, Title: "C", Suffix: "maj", UseBackground: true, Theme: palette.ThemeDark}, chord.DefaultInstrument())
	require.NoError(t, err)
	other, err := output.Identifier(dark)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestWriteFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "absent")
	w := output.NewWriter(newEngine(t), dir, nil)

	_, err := w.Write(cMajor(t))
	var ioErr *chorderrors.IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFailsWhenDirectoryIsAFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := output.NewWriter(newEngine(t), file, nil).Write(cMajor(t))
	var ioErr *chorderrors.IOError
	require.ErrorAs(t, err, &ioErr)
}

type brokenRenderer struct {
	doc string
	err error
}

func (b brokenRenderer) Render(chord.Chord) (string, error) { return b.doc, b.err }

func TestWriteLeavesNothingBehindOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		renderer brokenRenderer
	}{
		{"render error", brokenRenderer{err: chorderrors.NewTemplateError("notes", errors.New("boom"))}},
		{"malformed document", brokenRenderer{doc: "<svg><g></svg>"}},
		{"empty view box", brokenRenderer{doc: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			_, err := output.NewWriter(tt.renderer, dir, nil).Write(cMajor(t))
			var templateErr *chorderrors.TemplateError
			require.ErrorAs(t, err, &templateErr)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Empty(t, entries)
		})
	}
}

func TestValidateAcceptsRenderedDiagrams(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	specs := []chord.Spec{
		{Frets: []int{-1, 0, 2, 2, 2, 0}},
		{Frets: []int{-1, 3, 5, 5, 5, 3}, Barres: []int{3}, Title: "C", Suffix: "maj", Theme: palette.ThemeSepia, UseBackground: true},
		{Frets: []int{-1, -1, -1, -1, -1, -1}, Hand: chord.HandLeft, Title: "N.C."},
	}
	for _, spec := range specs {
		c, err := chord.New(spec, chord.DefaultInstrument())
		require.NoError(t, err)
		doc, err := engine.Render(c)
		require.NoError(t, err)
		require.NoError(t, output.Validate(doc))
	}
}

func TestCheckReportsMissingUpToDateAndDrifted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := output.NewWriter(newEngine(t), dir, nil)
	c := cMajor(t)

	res, err := w.Check(c)
	require.NoError(t, err)
	require.Equal(t, output.StatusMissing, res.Status)

	id, err := w.Write(c)
	require.NoError(t, err)

	res, err = w.Check(c)
	require.NoError(t, err)
	require.Equal(t, output.StatusUpToDate, res.Status)
	require.Equal(t, id, res.ID)
	require.Empty(t, res.Diff)

	path := w.Path(id)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tampered := strings.Replace(string(data), `class="open"`, `class="open" opacity="0.5"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o644))

	res, err = w.Check(c)
	require.NoError(t, err)
	require.Equal(t, output.StatusDrifted, res.Status)
	require.Contains(t, res.Diff, `+<circle class="open" opacity="0.5"`)
}
