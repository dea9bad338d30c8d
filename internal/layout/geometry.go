package layout

import (
	"fmt"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
)

// NutShape is the stroke-linecap used for the top line of the grid.
type NutShape string

const (
	NutRound NutShape = "round"
	NutButt  NutShape = "butt"
)

const (
	nutWidthShown  = 9
	nutWidthHidden = 2
)

// Geometry is derived once per render and shared read-only by every
// generator.
type Geometry struct {
	LowestFret      int
	ShowNut         bool
	NutWidth        int
	NutShape        NutShape
	ShowOpenMarkers bool
	// Rows is the number of fret rows drawn. It grows past Style.Rows when a
	// chord spans more frets than the default window.
	Rows int
}

// ComputeGeometry derives the shared geometry for c.
func ComputeGeometry(c chord.Chord, style Style) Geometry {
	frets := c.Frets()
	lowest := chord.LowestFret(frets)

	hasOpen, hasFirst := false, false
	highest := 0
	for _, fret := range frets {
		switch {
		case fret == chord.Open:
			hasOpen = true
		case fret == 1:
			hasFirst = true
		}
		if fret > highest {
			highest = fret
		}
	}

	g := Geometry{
		LowestFret:      lowest,
		ShowNut:         (hasOpen && lowest < 3) || hasFirst,
		ShowOpenMarkers: !c.HasBarre(),
		Rows:            style.Rows,
	}
	if g.ShowNut {
		g.NutWidth, g.NutShape = nutWidthShown, NutRound
	} else {
		g.NutWidth, g.NutShape = nutWidthHidden, NutButt
	}
	if lowest > 0 {
		if span := highest - lowest + 1; span > g.Rows {
			g.Rows = span
		}
	}
	return g
}

// ShowMinFret reports whether the floating window needs a fret number label.
func (g Geometry) ShowMinFret() bool {
	return g.LowestFret > 2 || (g.LowestFret > 1 && !g.ShowNut)
}

// Row returns the 1-based row a fretted position occupies in the window.
func (g Geometry) Row(fret int) int {
	return fret - g.LowestFret + 1
}

// canvas converts logical diagram positions into SVG coordinates.
type canvas struct {
	style Style
	rows  int
}

func newCanvas(style Style, g Geometry) canvas {
	return canvas{style: style, rows: g.Rows}
}

func (c canvas) stringX(position int) int {
	return c.style.Padding + position*c.style.StringSpacing
}

func (c canvas) gridLeft() int {
	return c.style.Padding
}

func (c canvas) gridRight() int {
	return c.stringX(c.style.Strings - 1)
}

func (c canvas) gridTop() int {
	return c.style.Padding + c.style.TitleHeight + c.style.HeaderHeight
}

func (c canvas) gridBottom() int {
	return c.gridTop() + c.rows*c.style.FretSpacing
}

func (c canvas) rowY(row int) int {
	return c.gridTop() + row*c.style.FretSpacing - c.style.FretSpacing/2
}

func (c canvas) headerY() int {
	return c.gridTop() - c.style.HeaderHeight/2
}

func (c canvas) width() int {
	return c.gridRight() + c.style.Padding
}

func (c canvas) height() int {
	return c.gridBottom() + c.style.Padding
}

// stringMap maps (hand, logical string index) to the horizontal position of
// the string in the drawing. Left-handed diagrams reverse the order.
type stringMap struct {
	right []int
	left  []int
}

func newStringMap(strings int) stringMap {
	m := stringMap{right: make([]int, strings), left: make([]int, strings)}
	for i := 0; i < strings; i++ {
		m.right[i] = i
		m.left[i] = strings - 1 - i
	}
	return m
}

func (m stringMap) position(hand chord.Hand, index int) (int, error) {
	var table []int
	switch hand {
	case chord.HandRight:
		table = m.right
	case chord.HandLeft:
		table = m.left
	default:
		return 0, fmt.Errorf("unknown %s", hand)
	}
	if index < 0 || index >= len(table) {
		return 0, fmt.Errorf("string %d out of range [0,%d)", index, len(table))
	}
	return table[index], nil
}
