package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

type line struct {
	kind diffmatchpatch.Operation
	text string
}

// Unified returns a line-based diff from expected to actual with a few lines
// of surrounding context. Identical inputs produce "".
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	lines := flatten(diffs)
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.kind == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-contextLines); j <= min(len(lines)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", expectedLabel, actualLabel)

	written := 0
	expLine, actLine := 1, 1
	gap := true
	for i, l := range lines {
		if !keep[i] {
			gap = true
		} else {
			if gap {
				fmt.Fprintf(&buf, "@@ -%d +%d @@\n", expLine, actLine)
				gap = false
			}
			buf.WriteString(prefix(l.kind))
			buf.WriteString(l.text)
			buf.WriteByte('\n')
			written++
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteByte('\n')
				break
			}
		}

		switch l.kind {
		case diffmatchpatch.DiffEqual:
			expLine++
			actLine++
		case diffmatchpatch.DiffDelete:
			expLine++
		case diffmatchpatch.DiffInsert:
			actLine++
		}
	}

	return buf.String()
}

func flatten(diffs []diffmatchpatch.Diff) []line {
	var out []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, l := range strings.Split(text, "\n") {
			out = append(out, line{kind: d.Type, text: l})
		}
	}
	return out
}

func prefix(kind diffmatchpatch.Operation) string {
	switch kind {
	case diffmatchpatch.DiffDelete:
		return "-"
	case diffmatchpatch.DiffInsert:
		return "+"
	default:
		return " "
	}
}
