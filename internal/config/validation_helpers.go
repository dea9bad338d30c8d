package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// convertValidationError normalizes validator errors into chordgen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return chorderrors.NewValidationError(field, msg, err)
	}

	return chorderrors.NewValidationError("book", err.Error(), err)
}

// yamlishFieldName drops the root type name and lowercases the rest, so
// "Book.Chords[1].Frets[0]" becomes "chords[1].frets[0]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "Instrument" {
			continue
		}
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForChord(index int, field string) string {
	return fmt.Sprintf("chords[%d].%s", index, field)
}
