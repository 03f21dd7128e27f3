package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Files     int
	FilesDone int
	Applied   int
	Skipped   int
	DryRun    bool
	Finished  bool
	Cancelled bool
	Err       string
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary. It is empty until at least one file is known.
func (s Summary) View() string {
	d := s.data
	if d.Files == 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("Files: %d/%d processed", d.FilesDone, d.Files),
		fmt.Sprintf("Patches: %d applied, %d skipped", d.Applied, d.Skipped),
	}

	switch {
	case d.Cancelled:
		lines = append(lines, "Run cancelled")
	case d.Err != "":
		lines = append(lines, "Run failed: "+d.Err)
	case d.Finished && d.DryRun:
		lines = append(lines, "Dry run finished; no files were written")
	case d.Finished:
		lines = append(lines, "Run finished successfully")
	}

	return strings.Join(lines, "\n")
}
