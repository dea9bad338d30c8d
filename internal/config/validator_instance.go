package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/palette"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	chordIDPattern       = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("chord_id", func(fl validator.FieldLevel) bool {
			return chordIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("fret", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() >= chord.Muted
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := palette.ParseTheme(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hand", func(fl validator.FieldLevel) bool {
			_, err := chord.ParseHand(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
