// Package changeset renders the difference between a file before and after patching.
package changeset

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ChangeSet summarises the differences between original and modified content.
type ChangeSet struct {
	Diff         string
	AddedLines   int
	RemovedLines int
	Changed      bool
}

// Generate builds a unified diff with three lines of context. label names the
// file in the diff headers.
func Generate(original, modified, label string) *ChangeSet {
	cs := &ChangeSet{Changed: original != modified}
	if !cs.Changed {
		return cs
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + label,
		ToFile:   "b/" + label,
		Context:  3,
	}
	diff, _ := difflib.GetUnifiedDiffString(ud)
	cs.Diff = strings.TrimRight(diff, "\n")

	for _, line := range strings.Split(cs.Diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			cs.AddedLines++
		case strings.HasPrefix(line, "-"):
			cs.RemovedLines++
		}
	}
	return cs
}
