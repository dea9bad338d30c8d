// Package layout turns a chord into the positioned SVG fragments of its
// diagram and binds them into a document.
package layout

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
	"github.com/alexisbeaulieu97/chordgen/internal/render"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// Renderer binds slots into a document.
type Renderer interface {
	Render(slots render.Slots) (string, error)
}

// Engine lays out chords for a fixed style. It holds no per-render state and
// is safe for concurrent use.
type Engine struct {
	style    Style
	renderer Renderer
	strings  stringMap
}

// NewEngine validates style and returns an engine rendering through r. A nil
// renderer selects the built-in skeleton.
func NewEngine(style Style, r Renderer) (*Engine, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		builtin, err := render.New()
		if err != nil {
			return nil, err
		}
		r = builtin
	}
	return &Engine{style: style, renderer: r, strings: newStringMap(style.Strings)}, nil
}

// Style returns the geometry the engine draws with.
func (e *Engine) Style() Style {
	return e.style
}

// Geometry returns the shared geometry that Render would use for c.
func (e *Engine) Geometry(c chord.Chord) (Geometry, error) {
	if err := e.check(c); err != nil {
		return Geometry{}, err
	}
	return ComputeGeometry(c, e.style), nil
}

// Render produces the SVG document for c. It is a pure function of c and
// the engine's style.
func (e *Engine) Render(c chord.Chord) (string, error) {
	slots, err := e.Slots(c)
	if err != nil {
		return "", err
	}
	return e.renderer.Render(slots)
}

// Slots computes every named fragment of the document without binding them.
func (e *Engine) Slots(c chord.Chord) (render.Slots, error) {
	if err := e.check(c); err != nil {
		return nil, err
	}

	g := ComputeGeometry(c, e.style)
	cv := newCanvas(e.style, g)
	colors := palette.For(c.Theme())
	foreground := string(colors.Foreground)

	muted, err := e.markers(MarkerMuted, c, g, cv)
	if err != nil {
		return nil, err
	}
	open := ""
	if g.ShowOpenMarkers {
		if open, err = e.markers(MarkerOpen, c, g, cv); err != nil {
			return nil, err
		}
	}
	notes, err := e.markers(MarkerNote, c, g, cv)
	if err != nil {
		return nil, err
	}
	barres, err := e.barres(c, g, cv)
	if err != nil {
		return nil, err
	}
	title, err := e.titleFragment(FormatTitle(c.Title(), c.Suffix()), cv, foreground)
	if err != nil {
		return nil, chorderrors.NewTemplateError(render.SlotTitle, err)
	}

	return render.Slots{
		render.SlotTitle:      title,
		render.SlotPadding:    e.style.Padding,
		render.SlotNutWidth:   g.NutWidth,
		render.SlotNutShape:   string(g.NutShape),
		render.SlotNotes:      notes,
		render.SlotMinFret:    e.minFret(g, cv, foreground),
		render.SlotMuted:      muted,
		render.SlotOpen:       open,
		render.SlotForeground: foreground,
		render.SlotBackground: background(c.UseBackground(), colors, cv),
		render.SlotBarres:     barres,
		render.SlotWidth:      cv.width(),
		render.SlotHeight:     cv.height(),
		render.SlotGridTop:    cv.gridTop(),
		render.SlotGridRight:  cv.gridRight(),
		render.SlotGrid:       grid(cv),
	}, nil
}

func (e *Engine) check(c chord.Chord) error {
	if c.Strings() != e.style.Strings {
		return chorderrors.NewInvalidInputError("frets", fmt.Sprintf("engine draws %d strings, chord has %d", e.style.Strings, c.Strings()))
	}
	return nil
}

func background(enabled bool, colors palette.Palette, cv canvas) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf(`<rect class="background" x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cv.width(), cv.height(), string(colors.Background))
}

// grid draws the strings and the fret wires below the nut. The nut itself
// is part of the skeleton.
func grid(cv canvas) string {
	lines := make([]string, 0, cv.style.Strings+cv.rows)
	for s := 0; s < cv.style.Strings; s++ {
		x := cv.stringX(s)
		lines = append(lines, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, cv.gridTop(), x, cv.gridBottom()))
	}
	for row := 1; row <= cv.rows; row++ {
		y := cv.gridTop() + row*cv.style.FretSpacing
		lines = append(lines, fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, cv.gridLeft(), y, cv.gridRight(), y))
	}
	return strings.Join(lines, "\n")
}
