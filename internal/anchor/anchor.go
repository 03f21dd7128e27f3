// Package anchor locates insertion points inside plain text.
//
// An anchor is either a single literal line, matched as an exact substring, or
// a block of lines, matched line by line after trimming surrounding whitespace
// from both sides. Only the first occurrence of an anchor is ever reported.
package anchor

import (
	"strings"
)

// Mode selects how an anchor is matched.
type Mode int

const (
	// ModeSingleLine matches the anchor as a literal substring.
	ModeSingleLine Mode = iota
	// ModeMultiLine matches a contiguous run of trimmed lines.
	ModeMultiLine
)

func (m Mode) String() string {
	switch m {
	case ModeSingleLine:
		return "single-line"
	case ModeMultiLine:
		return "multi-line"
	default:
		return "unknown"
	}
}

// Spec is a parsed anchor.
type Spec struct {
	raw   string
	lines []string
}

// Parse builds a Spec from a raw anchor value. A value with an embedded line
// break is a multi-line anchor.
func Parse(raw string) Spec {
	spec := Spec{raw: raw}
	if strings.Contains(raw, "\n") {
		spec.lines = strings.Split(raw, "\n")
	}
	return spec
}

// Mode reports how the anchor is matched.
func (s Spec) Mode() Mode {
	if s.lines != nil {
		return ModeMultiLine
	}
	return ModeSingleLine
}

// Lines returns the anchor lines for a multi-line anchor, or the single line.
func (s Spec) Lines() []string {
	if s.lines == nil {
		return []string{s.raw}
	}
	return append([]string(nil), s.lines...)
}

// String returns the raw anchor text.
func (s Spec) String() string {
	return s.raw
}

// Position is the insertion point produced by Locate.
//
// For single-line anchors Start and Offset are byte offsets of the match and
// of the byte right after it. For multi-line anchors Start is the first
// matched line index and Line is the index right after the last matched line.
type Position struct {
	Mode   Mode
	Start  int
	Offset int
	Line   int
}

// Locate finds the first occurrence of spec in text.
func Locate(text string, spec Spec) (Position, bool) {
	if spec.Mode() == ModeMultiLine {
		return locateBlock(SplitLines(text), spec.lines)
	}
	return locateLiteral(text, spec.raw)
}

// LocateLines is the multi-line search over text already split into lines.
// The anchor lines are compared after trimming.
func LocateLines(lines, anchorLines []string) (Position, bool) {
	return locateBlock(lines, anchorLines)
}

func locateLiteral(text, literal string) (Position, bool) {
	idx := strings.Index(text, literal)
	if idx < 0 {
		return Position{Mode: ModeSingleLine}, false
	}
	return Position{
		Mode:   ModeSingleLine,
		Start:  idx,
		Offset: idx + len(literal),
	}, true
}

func locateBlock(lines, anchorLines []string) (Position, bool) {
	notFound := Position{Mode: ModeMultiLine}
	if len(anchorLines) == 0 || len(anchorLines) > len(lines) {
		return notFound, false
	}

	want := make([]string, len(anchorLines))
	for j, line := range anchorLines {
		want[j] = strings.TrimSpace(line)
	}

	for i := 0; i <= len(lines)-len(want); i++ {
		match := true
		for j := range want {
			if strings.TrimSpace(lines[i+j]) != want[j] {
				match = false
				break
			}
		}
		if match {
			return Position{
				Mode:  ModeMultiLine,
				Start: i,
				Line:  i + len(want),
			}, true
		}
	}
	return notFound, false
}

// SplitLines splits text on "\n". JoinLines(SplitLines(t)) == t for any t;
// a trailing newline produces a trailing empty element.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
