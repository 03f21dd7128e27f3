// Package patch splices snippets into text after anchors.
//
// Apply is pure: it never touches the filesystem and never logs. Callers
// decide what to do with descriptors whose anchors were not found.
package patch

import (
	"github.com/alexisbeaulieu97/graft/internal/anchor"
)

// Descriptor fully specifies one patch operation.
type Descriptor struct {
	// Name is used for reporting only.
	Name    string
	Anchor  anchor.Spec
	Snippet string
}

// NewDescriptor builds a Descriptor from a raw anchor value.
func NewDescriptor(name, afterLine, snippet string) Descriptor {
	return Descriptor{Name: name, Anchor: anchor.Parse(afterLine), Snippet: snippet}
}

// Outcome is the per-descriptor result of an Apply call.
type Outcome struct {
	Name     string
	Matched  bool
	Mode     anchor.Mode
	Position anchor.Position
}

// Result holds the patched text along with one Outcome per descriptor, in
// descriptor order.
type Result struct {
	Original string
	Text     string
	Outcomes []Outcome
}

// Applied returns the number of descriptors whose anchor was found.
func (r Result) Applied() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Matched {
			count++
		}
	}
	return count
}

// Unmatched returns the outcomes whose anchor was not found.
func (r Result) Unmatched() []Outcome {
	var unmatched []Outcome
	for _, outcome := range r.Outcomes {
		if !outcome.Matched {
			unmatched = append(unmatched, outcome)
		}
	}
	return unmatched
}

// UnmatchedNames returns the names of descriptors whose anchor was not found.
func (r Result) UnmatchedNames() []string {
	var names []string
	for _, outcome := range r.Unmatched() {
		names = append(names, outcome.Name)
	}
	return names
}

// Changed reports whether the text differs from the original.
func (r Result) Changed() bool {
	return r.Text != r.Original
}

// Apply runs every descriptor against text in order. Each descriptor sees the
// text produced by the ones before it.
func Apply(text string, descriptors []Descriptor) Result {
	return ApplyWith(text, descriptors, nil)
}

// ApplyWith is Apply with an observer called after each descriptor.
func ApplyWith(text string, descriptors []Descriptor, onOutcome func(Outcome)) Result {
	result := Result{
		Original: text,
		Text:     text,
		Outcomes: make([]Outcome, 0, len(descriptors)),
	}

	for _, desc := range descriptors {
		var outcome Outcome
		result.Text, outcome = applyOne(result.Text, desc)
		result.Outcomes = append(result.Outcomes, outcome)
		if onOutcome != nil {
			onOutcome(outcome)
		}
	}

	return result
}

func applyOne(text string, desc Descriptor) (string, Outcome) {
	outcome := Outcome{Name: desc.Name, Mode: desc.Anchor.Mode()}

	if desc.Anchor.Mode() == anchor.ModeMultiLine {
		lines := anchor.SplitLines(text)
		pos, ok := anchor.LocateLines(lines, desc.Anchor.Lines())
		outcome.Position = pos
		if !ok {
			return text, outcome
		}
		outcome.Matched = true
		lines = insertLine(lines, pos.Line, desc.Snippet)
		return anchor.JoinLines(lines), outcome
	}

	pos, ok := anchor.Locate(text, desc.Anchor)
	outcome.Position = pos
	if !ok {
		return text, outcome
	}
	outcome.Matched = true
	return text[:pos.Offset] + desc.Snippet + text[pos.Offset:], outcome
}

func insertLine(lines []string, at int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	return append(out, lines[at:]...)
}
