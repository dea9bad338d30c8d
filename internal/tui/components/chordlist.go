package components

import (
	"github.com/alexisbeaulieu97/chordgen/internal/batch"
)

// ChordEntry represents a single chord for rendering.
type ChordEntry struct {
	ID     string
	Result batch.Result
}

// ChordList renders chords with their current status.
type ChordList struct {
	entries []ChordEntry
}

// NewChordList constructs a chord list component.
func NewChordList(order []string, results map[string]batch.Result) ChordList {
	entries := make([]ChordEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, ChordEntry{ID: id, Result: results[id]})
	}
	return ChordList{entries: entries}
}

// Entries returns the ordered chord entries.
func (c ChordList) Entries() []ChordEntry {
	clone := make([]ChordEntry, len(c.entries))
	copy(clone, c.entries)
	return clone
}
