package diff

import (
	"strings"
	"testing"
)

func TestInsertions_IdenticalContent(t *testing.T) {
	summary := Insertions("line1\nline2\n", "line1\nline2\n")

	if summary != (Summary{}) {
		t.Errorf("expected empty summary for identical content, got %+v", summary)
	}
	if !summary.InsertOnly() {
		t.Error("identical content should count as insert-only")
	}
}

func TestInsertions_SingleSplice(t *testing.T) {
	summary := Insertions("A\nB\n", "A\nX\n\nB\n")

	if summary.Inserted != 3 {
		t.Errorf("expected 3 inserted characters, got %d", summary.Inserted)
	}
	if summary.Hunks != 1 {
		t.Errorf("expected 1 hunk, got %d", summary.Hunks)
	}
	if !summary.InsertOnly() {
		t.Errorf("pure insertion reported deletions: %+v", summary)
	}
}

func TestInsertions_MultipleSplices(t *testing.T) {
	original := "#include \"a.h\"\nint main() {\n    run();\n}\n"
	patched := "#include \"a.h\"\n#include \"b.h\"\nint main() {\n    run();\n    extra();\n}\n"

	summary := Insertions(original, patched)

	if !summary.InsertOnly() {
		t.Fatalf("pure insertions reported deletions: %+v", summary)
	}
	if summary.Inserted != len("#include \"b.h\"\n")+len("    extra();\n") {
		t.Errorf("unexpected inserted count %d", summary.Inserted)
	}
}

func TestInsertions_DetectsDeletion(t *testing.T) {
	summary := Insertions("keep this line\n", "keep line\n")

	if summary.InsertOnly() {
		t.Error("removing text must not count as insert-only")
	}
	if summary.Deleted != len("this ") {
		t.Errorf("expected %d deleted characters, got %d", len("this "), summary.Deleted)
	}
}

func TestInsertions_CountsRunes(t *testing.T) {
	summary := Insertions("a\n", "a準備\n")

	if summary.Inserted != 2 {
		t.Errorf("expected 2 inserted runes, got %d", summary.Inserted)
	}
}

func TestInsertions_LargeInput(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2000; i++ {
		b.WriteString("    statement();\n")
	}
	original := b.String()
	patched := original[:len(original)/2] + "#ifdef FEATURE\n    feature();\n#endif\n" + original[len(original)/2:]

	summary := Insertions(original, patched)
	if !summary.InsertOnly() {
		t.Fatalf("expected insert-only summary, got %+v", summary)
	}
	if summary.Inserted != len("#ifdef FEATURE\n    feature();\n#endif\n") {
		t.Errorf("unexpected inserted count %d", summary.Inserted)
	}
}
