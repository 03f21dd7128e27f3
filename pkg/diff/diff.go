// Package diff checks that patched text only adds to the original.
package diff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Summary counts the characters (runes) a patch run inserted and deleted.
type Summary struct {
	Inserted int
	Deleted  int
	// Hunks is the number of separate insertion runs.
	Hunks int
}

// InsertOnly reports whether the patched text kept every original character.
func (s Summary) InsertOnly() bool {
	return s.Deleted == 0
}

// Insertions compares original and patched character by character.
//
// The diff is computed without a deadline so it is minimal: when patched is
// original with text spliced in, Deleted is always zero. No semantic cleanup is
// run because it may fold short equalities into delete/insert pairs.
func Insertions(original, patched string) Summary {
	var summary Summary
	if original == patched {
		return summary
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	for _, d := range dmp.DiffMain(original, patched, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			summary.Inserted += utf8.RuneCountInString(d.Text)
			summary.Hunks++
		case diffmatchpatch.DiffDelete:
			summary.Deleted += utf8.RuneCountInString(d.Text)
		}
	}
	return summary
}
