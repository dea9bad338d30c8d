package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/chordgen/internal/layout"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseBook loads a chord book from disk, validates it, and returns the resulting model.
func ParseBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chorderrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a chord book held in memory. path is only used in errors.
// Style keys missing from the document keep their default values.
func Parse(data []byte, path string) (*Book, error) {
	book := DefaultBook()
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, chorderrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateBook(&book); err != nil {
		return nil, err
	}

	return &book, nil
}

// ParseStyle loads a standalone style document. Keys it omits keep their
// default values.
func ParseStyle(path string) (layout.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Style{}, chorderrors.NewParseError(path, 0, err)
	}

	style := layout.DefaultStyle()
	if err := yaml.Unmarshal(data, &style); err != nil {
		return layout.Style{}, chorderrors.NewParseError(path, extractLine(err), err)
	}
	if err := style.Validate(); err != nil {
		return layout.Style{}, err
	}
	return style, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
