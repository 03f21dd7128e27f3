package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("graft • %s", m.title())))

	progress := components.NewProgress(m.totalPatches).View(m.processed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if entries := m.files.Entries(); len(entries) > 0 {
		sections = append(sections, sectionStyle.Render("Files"), renderFileEntries(entries))
	}

	applied, skipped := m.counts()
	data := components.SummaryData{
		Files:     m.files.Len(),
		FilesDone: m.filesDone,
		Applied:   applied,
		Skipped:   skipped,
		DryRun:    m.dryRun,
		Finished:  m.finished,
		Cancelled: m.cancelled,
	}
	if m.err != nil {
		data.Err = m.err.Error()
	}
	if summary := components.NewSummary(data).View(); strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderFileEntries(entries []components.FileEntry) string {
	var lines []string
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf(" %s %s", StatusIcon(entry.Status), entry.Label))
		for _, name := range entry.Applied {
			lines = append(lines, patchStyle.Render(successStyle.Render("+")+" "+name))
		}
		for _, name := range entry.Skipped {
			lines = append(lines, patchStyle.Render(skippedStyle.Render("-")+" "+name+" (anchor not found)"))
		}
		if strings.TrimSpace(entry.Message) != "" {
			lines = append(lines, patchStyle.Render(failureStyle.Render(entry.Message)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) title() string {
	if m.cfg != nil && strings.TrimSpace(m.cfg.Name) != "" {
		return m.cfg.Name
	}
	return "patch run"
}

// StatusIcon returns the glyph representing a file status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusPatched:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusUnchanged:
		return skippedStyle.Render("⊘")
	case model.StatusWouldPatch:
		return pendingStyle.Render("↻")
	default:
		return pendingStyle.Render("…")
	}
}
