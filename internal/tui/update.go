package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case FileStartMsg:
		entry := m.entry(msg.Label)
		entry.Status = model.StatusRunning
		m.files.Upsert(entry)
		return m, nil
	case PatchMsg:
		entry := m.entry(msg.Label)
		if msg.Outcome.Matched {
			entry.Applied = append(entry.Applied, msg.Outcome.Name)
		} else {
			entry.Skipped = append(entry.Skipped, msg.Outcome.Name)
		}
		m.files.Upsert(entry)
		m.processed++
		return m, nil
	case FileDoneMsg:
		entry := m.entry(msg.Result.Label)
		if !model.IsTerminal(entry.Status) {
			m.filesDone++
		}
		entry.Status = msg.Result.Status
		if msg.Result.Error != nil {
			entry.Message = msg.Result.Error.Error()
		}
		m.files.Upsert(entry)
		return m, nil
	case RunDoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}

func (m Model) entry(label string) components.FileEntry {
	if e, ok := m.files.Get(label); ok {
		return e
	}
	return components.FileEntry{Label: label, Status: model.StatusPending}
}
