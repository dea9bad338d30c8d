package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/render"
)

func TestFormatTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title, suffix, want string
	}{
		{"", "", ""},
		{"C", "", "C"},
		{"", "maj7", "maj7"},
		{"C", "maj", "Cmaj"},
		{"Bb", "", "B♭"},
		{"F#", "m", "F♯m"},
		{"Ab/Eb", "", "A♭/E♭"},
		{"B", "dim", "B°"},
		{"C", "aug", "C+"},
		{"B", "m7b5", "Bm7♭5"},
		{"E", "7#9", "E7♯9"},
		{"G", "sus4", "Gsus4"},
		{"  D ", " nat ", "D♮"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatTitle(tt.title, tt.suffix), "%q + %q", tt.title, tt.suffix)
	}
}

func TestTitleFragmentEscapesText(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	c := mustChord(t, chord.Spec{Frets: []int{-1, 0, 2, 2, 2, 0}, Title: "A<b>", Suffix: "&"})

	slots, err := engine.Slots(c)
	require.NoError(t, err)
	require.Equal(t, `<text class="title" x="130" y="52" font-size="22" text-anchor="middle" fill="#1a1a1a">A&lt;b&gt;&amp;</text>`, slots[render.SlotTitle])

	untitled := mustChord(t, chord.Spec{Frets: []int{-1, 0, 2, 2, 2, 0}})
	slots, err = engine.Slots(untitled)
	require.NoError(t, err)
	require.Empty(t, slots[render.SlotTitle])
}
