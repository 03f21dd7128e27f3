package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		done  int
		label string
	}{
		{name: "zero total", total: 0, done: 0, label: "0/0 patches"},
		{name: "partial", total: 4, done: 1, label: "1/4 patches"},
		{name: "complete", total: 4, done: 4, label: "4/4 patches"},
		{name: "beyond total", total: 4, done: 6, label: "6/4 patches"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewProgress(tt.total).View(tt.done)
			require.Contains(t, view, tt.label)
			require.Greater(t, len(strings.TrimSpace(view)), len(tt.label))
		})
	}
}

func TestFileListKeepsOrder(t *testing.T) {
	t.Parallel()

	l := NewFileList([]string{"GUI_App.cpp", "GUI_App.hpp"}, "pending")
	l.Upsert(FileEntry{Label: "GUI_App.hpp", Status: "patched", Applied: []string{"timer"}})
	l.Upsert(FileEntry{Label: "extra.cpp", Status: "running"})

	entries := l.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "GUI_App.cpp", entries[0].Label)
	require.Equal(t, "pending", entries[0].Status)
	require.Equal(t, "patched", entries[1].Status)
	require.Equal(t, []string{"timer"}, entries[1].Applied)
	require.Equal(t, "extra.cpp", entries[2].Label)
	require.Equal(t, 3, l.Len())

	_, ok := l.Get("missing")
	require.False(t, ok)
}

func TestFileListZeroValueUsable(t *testing.T) {
	t.Parallel()

	var l FileList
	l.Upsert(FileEntry{Label: "a"})
	require.Equal(t, 1, l.Len())
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     SummaryData
		contains []string
	}{
		{
			name:     "in progress",
			data:     SummaryData{Files: 2, FilesDone: 1, Applied: 3},
			contains: []string{"Files: 1/2 processed", "Patches: 3 applied, 0 skipped"},
		},
		{
			name:     "finished",
			data:     SummaryData{Files: 2, FilesDone: 2, Applied: 4, Finished: true},
			contains: []string{"Run finished successfully"},
		},
		{
			name:     "dry run",
			data:     SummaryData{Files: 1, FilesDone: 1, DryRun: true, Finished: true},
			contains: []string{"Dry run finished"},
		},
		{
			name:     "failed",
			data:     SummaryData{Files: 1, Finished: true, Err: "boom"},
			contains: []string{"Run failed: boom"},
		},
		{
			name:     "cancelled wins",
			data:     SummaryData{Files: 1, Finished: true, Cancelled: true, Err: "context canceled"},
			contains: []string{"Run cancelled"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewSummary(tt.data).View()
			for _, want := range tt.contains {
				require.Contains(t, view, want)
			}
		})
	}

	require.Equal(t, "", NewSummary(SummaryData{}).View())
}
