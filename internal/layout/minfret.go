package layout

import "fmt"

// minFret labels the first row with the lowest fret when the window floats
// away from the nut.
func (e *Engine) minFret(g Geometry, cv canvas, foreground string) string {
	if !g.ShowMinFret() {
		return ""
	}
	size := e.style.FontSize * 2 / 3
	x := cv.gridLeft() - e.style.NoteRadius - 4
	y := cv.rowY(1) + size/3
	return fmt.Sprintf(`<text class="min-fret" x="%d" y="%d" font-size="%d" text-anchor="end" fill="%s">%d</text>`,
		x, y, size, foreground, g.LowestFret)
}
