package layout

import (
	"fmt"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
)

// MarkerMode selects what the string marker generator draws.
type MarkerMode int

const (
	MarkerMuted MarkerMode = iota
	MarkerOpen
	MarkerNote
)

func (m MarkerMode) String() string {
	switch m {
	case MarkerMuted:
		return "muted"
	case MarkerOpen:
		return "open"
	case MarkerNote:
		return "note"
	default:
		return fmt.Sprintf("marker(%d)", int(m))
	}
}

// stringMarker draws the fragment for one string. It returns an empty
// fragment when nothing should be drawn for the (mode, fret) pair.
func (e *Engine) stringMarker(mode MarkerMode, hand chord.Hand, index, fret int, g Geometry, cv canvas) (string, error) {
	switch mode {
	case MarkerMuted:
		if fret != chord.Muted {
			return "", nil
		}
	case MarkerOpen:
		if fret != chord.Open || !g.ShowOpenMarkers {
			return "", nil
		}
	case MarkerNote:
		if fret <= 0 {
			return "", nil
		}
	default:
		return "", fmt.Errorf("unknown %s", mode)
	}

	position, err := e.strings.position(hand, index)
	if err != nil {
		return "", err
	}
	x := cv.stringX(position)
	r := e.style.MarkerRadius

	switch mode {
	case MarkerMuted:
		y := cv.headerY()
		return fmt.Sprintf(`<path class="muted" d="M%d %d L%d %d M%d %d L%d %d"/>`,
			x-r, y-r, x+r, y+r, x-r, y+r, x+r, y-r), nil
	case MarkerOpen:
		return fmt.Sprintf(`<circle class="open" cx="%d" cy="%d" r="%d"/>`, x, cv.headerY(), r), nil
	default:
		return fmt.Sprintf(`<circle class="note" cx="%d" cy="%d" r="%d"/>`, x, cv.rowY(g.Row(fret)), e.style.NoteRadius), nil
	}
}

// markers runs the generator in mode over every string and concatenates
// the resulting fragments.
func (e *Engine) markers(mode MarkerMode, c chord.Chord, g Geometry, cv canvas) (string, error) {
	var out []byte
	for i, fret := range c.Frets() {
		fragment, err := e.stringMarker(mode, c.Hand(), i, fret, g, cv)
		if err != nil {
			return "", fmt.Errorf("%s marker for string %d: %w", mode, i, err)
		}
		if fragment == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, fragment...)
	}
	return string(out), nil
}
