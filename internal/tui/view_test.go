package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/patch"
)

func TestViewRendersFilesAndPatches(t *testing.T) {
	t.Parallel()

	m := NewModel(testConfig(), false)
	m, _ = step(t, m, PatchMsg{Label: "GUI_App.cpp", Outcome: patch.Outcome{Name: "include", Matched: true}})
	m, _ = step(t, m, PatchMsg{Label: "GUI_App.cpp", Outcome: patch.Outcome{Name: "init"}})

	view := m.View()
	require.Contains(t, view, "cef-gui-app")
	require.Contains(t, view, "GUI_App.cpp")
	require.Contains(t, view, "GUI_App.hpp")
	require.Contains(t, view, "include")
	require.Contains(t, view, "(anchor not found)")
	require.Contains(t, view, "2/3 patches")
}

func TestViewShowsSummaryWhenFinished(t *testing.T) {
	t.Parallel()

	m := NewModel(testConfig(), true)
	m, _ = step(t, m, FileDoneMsg{Result: model.FileResult{Label: "GUI_App.cpp", Status: model.StatusWouldPatch}})
	m, _ = step(t, m, RunDoneMsg{})

	view := m.View()
	require.Contains(t, view, "Files: 1/2 processed")
	require.Contains(t, view, "Dry run finished")
}

func TestViewShowsRunError(t *testing.T) {
	t.Parallel()

	m := NewModel(testConfig(), false)
	m, _ = step(t, m, RunDoneMsg{Err: errors.New("disk full")})
	require.Contains(t, m.View(), "Run failed: disk full")
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{"patched shows checkmark", model.StatusPatched, "✓"},
		{"running shows hourglass", model.StatusRunning, "⏳"},
		{"failed shows cross", model.StatusFailed, "✗"},
		{"unchanged shows circle-slash", model.StatusUnchanged, "⊘"},
		{"would patch shows cycle", model.StatusWouldPatch, "↻"},
		{"pending shows ellipsis", model.StatusPending, "…"},
		{"unknown shows ellipsis", "unknown", "…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Contains(t, StatusIcon(tt.status), tt.expected)
		})
	}
}
