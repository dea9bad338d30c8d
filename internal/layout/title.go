package layout

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	glyphFlat       = "♭"
	glyphSharp      = "♯"
	glyphNatural    = "♮"
	glyphDiminished = "°"
	glyphAugmented  = "+"
)

var (
	rootFlatPattern   = regexp.MustCompile(`([A-Ga-g])b`)
	suffixFlatPattern = regexp.MustCompile(`b(\d)`)
	suffixWords       = strings.NewReplacer(
		"dim", glyphDiminished,
		"aug", glyphAugmented,
		"nat", glyphNatural,
		"#", glyphSharp,
	)
)

// FormatTitle composes the displayed chord name from a root and a quality
// suffix, swapping ASCII accidentals for their glyphs. It returns "" when
// both parts are empty.
func FormatTitle(title, suffix string) string {
	root := strings.TrimSpace(title)
	quality := strings.TrimSpace(suffix)
	if root == "" && quality == "" {
		return ""
	}

	root = rootFlatPattern.ReplaceAllString(root, "${1}"+glyphFlat)
	root = strings.ReplaceAll(root, "#", glyphSharp)

	quality = suffixWords.Replace(quality)
	quality = suffixFlatPattern.ReplaceAllString(quality, glyphFlat+"${1}")

	return norm.NFC.String(root + quality)
}

// titleFragment positions the formatted name centered above the grid.
func (e *Engine) titleFragment(name string, cv canvas, foreground string) (string, error) {
	if name == "" {
		return "", nil
	}
	var escaped strings.Builder
	if err := xml.EscapeText(&escaped, []byte(name)); err != nil {
		return "", err
	}
	x := cv.width() / 2
	y := e.style.Padding + e.style.FontSize
	return fmt.Sprintf(`<text class="title" x="%d" y="%d" font-size="%d" text-anchor="middle" fill="%s">%s</text>`,
		x, y, e.style.FontSize, foreground, escaped.String()), nil
}
