package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/graft/internal/config"
	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/patch"
	"github.com/alexisbeaulieu97/graft/internal/tui/components"
)

// FileStartMsg indicates a file is about to be patched.
type FileStartMsg struct {
	Label string
}

// PatchMsg reports the outcome of a single patch.
type PatchMsg struct {
	Label   string
	Outcome patch.Outcome
}

// FileDoneMsg reports that a file has been processed.
type FileDoneMsg struct {
	Result model.FileResult
}

// RunDoneMsg ends the program. Err is the run error, if any.
type RunDoneMsg struct {
	Err error
}

type tickMsg struct{}

// Model contains the Bubbletea state for a patch run.
type Model struct {
	cfg          *config.Config
	files        components.FileList
	totalPatches int
	processed    int
	filesDone    int
	dryRun       bool
	finished     bool
	cancelled    bool
	err          error
}

// NewModel seeds the model with every configured file as pending.
func NewModel(cfg *config.Config, dryRun bool) Model {
	m := Model{cfg: cfg, dryRun: dryRun}
	if cfg != nil {
		m.files = components.NewFileList(cfg.Labels(), model.StatusPending)
		m.totalPatches = cfg.TotalPatches()
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalPatches returns the number of patches in the configuration.
func (m Model) TotalPatches() int {
	return m.totalPatches
}

// ProcessedPatches returns how many patches have reported an outcome.
func (m Model) ProcessedPatches() int {
	return m.processed
}

// IsFinished reports whether the run has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the program.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m Model) counts() (applied, skipped int) {
	for _, e := range m.files.Entries() {
		applied += len(e.Applied)
		skipped += len(e.Skipped)
	}
	return applied, skipped
}
