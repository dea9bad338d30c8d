package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		completed int
		want      float64
	}{
		{"empty book", 0, 0, 0},
		{"nothing done", 4, 0, 0},
		{"half done", 4, 2, 0.5},
		{"all done", 4, 4, 1},
		{"overshoot is clamped", 4, 6, 1},
		{"negative is clamped", 4, -1, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tt.want, NewProgress(tt.total).Ratio(tt.completed), 1e-9)
		})
	}
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	view := NewProgress(10).View(5)
	require.Contains(t, view, "5/10 chords")
	require.Greater(t, len(strings.TrimSpace(view)), len("5/10 chords"))

	require.Contains(t, NewProgress(0).View(0), "0/0 chords")
}
