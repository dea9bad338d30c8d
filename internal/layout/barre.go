package layout

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
)

// barre draws one bar at the row of fret, spanning the outermost strings
// fretted at or above it. Muted, open and lower strings do not widen the
// bar. An empty fragment is returned when no string is covered.
func (e *Engine) barre(fret int, c chord.Chord, g Geometry, cv canvas) (string, error) {
	left, right := -1, -1
	for i, f := range c.Frets() {
		if f < fret {
			continue
		}
		position, err := e.strings.position(c.Hand(), i)
		if err != nil {
			return "", err
		}
		if left == -1 || position < left {
			left = position
		}
		if position > right {
			right = position
		}
	}
	if left == -1 {
		return "", nil
	}

	r := e.style.NoteRadius
	x := cv.stringX(left) - r
	y := cv.rowY(g.Row(fret)) - r
	width := cv.stringX(right) - cv.stringX(left) + 2*r
	return fmt.Sprintf(`<rect class="barre" x="%d" y="%d" width="%d" height="%d" rx="%d" ry="%d"/>`,
		x, y, width, 2*r, r, r), nil
}

// barres draws every barre of c in the order given.
func (e *Engine) barres(c chord.Chord, g Geometry, cv canvas) (string, error) {
	var fragments []string
	for _, fret := range c.Barres() {
		fragment, err := e.barre(fret, c, g, cv)
		if err != nil {
			return "", fmt.Errorf("barre at fret %d: %w", fret, err)
		}
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, "\n"), nil
}
