// Package render binds computed diagram fragments into the SVG document
// skeleton. It performs no layout of its own.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// Slot names understood by the skeleton.
const (
	SlotTitle      = "title"
	SlotPadding    = "padding"
	SlotNutWidth   = "nutWidth"
	SlotNutShape   = "nutShape"
	SlotNotes      = "notes"
	SlotMinFret    = "minFret"
	SlotMuted      = "muted"
	SlotOpen       = "open"
	SlotForeground = "foreground"
	SlotBackground = "background"
	SlotBarres     = "barres"
	SlotWidth      = "width"
	SlotHeight     = "height"
	SlotGridTop    = "gridTop"
	SlotGridRight  = "gridRight"
	SlotGrid       = "grid"
)

// RequiredSlots lists every slot the default skeleton reads.
var RequiredSlots = []string{
	SlotTitle, SlotPadding, SlotNutWidth, SlotNutShape, SlotNotes, SlotMinFret,
	SlotMuted, SlotOpen, SlotForeground, SlotBackground, SlotBarres,
	SlotWidth, SlotHeight, SlotGridTop, SlotGridRight, SlotGrid,
}

//go:embed templates/chord.svg.tmpl
var chordSkeleton string

// Slots maps slot names to their already formatted values. Values are
// written verbatim; fragments must be escaped by whoever built them.
type Slots map[string]any

// Renderer substitutes slots into a parsed skeleton. It is safe for
// concurrent use.
type Renderer struct {
	tmpl     *template.Template
	required []string
}

// New returns a Renderer for the built-in chord skeleton.
func New() (*Renderer, error) {
	return NewFromString("chord.svg", chordSkeleton, RequiredSlots)
}

// NewFromString parses a custom skeleton. required names the slots that must
// be present in every Render call.
func NewFromString(name, skeleton string, required []string) (*Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(skeleton)
	if err != nil {
		return nil, chorderrors.NewTemplateError("", fmt.Errorf("parse skeleton %q: %w", name, err))
	}
	return &Renderer{tmpl: tmpl, required: append([]string(nil), required...)}, nil
}

// Render executes the skeleton with slots.
func (r *Renderer) Render(slots Slots) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", chorderrors.NewTemplateError("", fmt.Errorf("renderer is not initialised"))
	}
	for _, name := range r.required {
		if _, ok := slots[name]; !ok {
			return "", chorderrors.NewTemplateError(name, fmt.Errorf("slot %q is missing", name))
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]any(slots)); err != nil {
		return "", chorderrors.NewTemplateError("", fmt.Errorf("execute skeleton: %w", err))
	}
	return buf.String(), nil
}
