package chord

import (
	"fmt"
	"strconv"
	"strings"

	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

// ParseFrets reads a fret list. Two notations are accepted: a comma or space
// separated list ("-1,0,2,2,2,0" or "x 0 2 2 2 0"), and the compact
// single-digit form ("x02220") where every character is one string. Muted
// strings are written -1, x or m; "-" alone is not accepted.
func ParseFrets(input string) ([]int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, chorderrors.NewInvalidInputError("frets", "no frets given")
	}

	var fields []string
	if strings.ContainsAny(trimmed, ", ") {
		fields = strings.FieldsFunc(trimmed, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		for _, r := range trimmed {
			fields = append(fields, string(r))
		}
	}

	frets := make([]int, 0, len(fields))
	for i, field := range fields {
		fret, err := parseFret(field)
		if err != nil {
			return nil, chorderrors.NewInvalidInputError(fmt.Sprintf("frets[%d]", i), err.Error())
		}
		frets = append(frets, fret)
	}
	return frets, nil
}

func parseFret(field string) (int, error) {
	switch strings.ToLower(field) {
	case "x", "m":
		return Muted, nil
	case "o":
		return Open, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a fret", field)
	}
	return n, nil
}
