package layout

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// Style holds the geometry of a diagram. All measures are in SVG user units.
type Style struct {
	chord.Instrument `yaml:",inline"`

	StringSpacing int `yaml:"string_spacing" validate:"min=10,max=200"`
	FretSpacing   int `yaml:"fret_spacing" validate:"min=10,max=200"`
	Padding       int `yaml:"padding" validate:"min=10,max=200"`
	TitleHeight   int `yaml:"title_height" validate:"min=0,max=200"`
	HeaderHeight  int `yaml:"header_height" validate:"min=10,max=200"`
	Rows          int `yaml:"rows" validate:"min=1,max=24"`
	NoteRadius    int `yaml:"note_radius" validate:"min=2,max=100,ltefield=StringSpacing"`
	MarkerRadius  int `yaml:"marker_radius" validate:"min=2,max=100"`
	FontSize      int `yaml:"font_size" validate:"min=6,max=96"`
}

// DefaultStyle returns the standard six string diagram.
func DefaultStyle() Style {
	return Style{
		Instrument:    chord.DefaultInstrument(),
		StringSpacing: 40,
		FretSpacing:   40,
		Padding:       30,
		TitleHeight:   40,
		HeaderHeight:  30,
		Rows:          5,
		NoteRadius:    12,
		MarkerRadius:  8,
		FontSize:      22,
	}
}

var (
	styleValidatorOnce sync.Once
	styleValidator     *validator.Validate
)

func styleValidatorInstance() *validator.Validate {
	styleValidatorOnce.Do(func() {
		styleValidator = validator.New()
	})
	return styleValidator
}

// Validate checks every measure is inside its supported range.
func (s Style) Validate() error {
	err := styleValidatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := "style." + strings.ToLower(fe.Field())
		return chorderrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
	}
	return chorderrors.NewValidationError("style", err.Error(), err)
}
