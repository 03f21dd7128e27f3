package model

import (
	"time"

	"github.com/alexisbeaulieu97/graft/internal/gitinfo"
	"github.com/alexisbeaulieu97/graft/internal/patch"
)

const (
	// StatusPending indicates a file has not been processed yet.
	StatusPending = "pending"
	// StatusRunning indicates a file is being patched.
	StatusRunning = "running"
	// StatusPatched marks a file that was rewritten.
	StatusPatched = "patched"
	// StatusUnchanged marks a file where no anchor matched.
	StatusUnchanged = "unchanged"
	// StatusWouldPatch indicates dry-run found changes that were not written.
	StatusWouldPatch = "would_patch"
	// StatusFailed marks a file that could not be patched.
	StatusFailed = "failed"
)

// FileResult captures the outcome of patching a single file.
type FileResult struct {
	Path     string
	Label    string
	Status   string
	Outcomes []patch.Outcome
	// Diff is the unified diff of the change, empty when nothing changed.
	Diff string
	// Inserted counts the characters added to the file.
	Inserted int
	// BeforeHash and AfterHash fingerprint the file content.
	BeforeHash string
	AfterHash  string
	BackupPath string
	Git        *gitinfo.Status
	Error      error
	Duration   time.Duration
}

// Applied returns the names of patches whose anchor matched.
func (r *FileResult) Applied() []string {
	return r.names(true)
}

// Skipped returns the names of patches whose anchor was not found.
func (r *FileResult) Skipped() []string {
	return r.names(false)
}

func (r *FileResult) names(matched bool) []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, o := range r.Outcomes {
		if o.Matched == matched {
			out = append(out, o.Name)
		}
	}
	return out
}

// Changed reports whether the file content was (or would be) modified.
func (r *FileResult) Changed() bool {
	if r == nil {
		return false
	}
	return r.Status == StatusPatched || r.Status == StatusWouldPatch
}

// IsTerminal reports whether status is a final file state.
func IsTerminal(status string) bool {
	switch status {
	case StatusPatched, StatusUnchanged, StatusWouldPatch, StatusFailed:
		return true
	default:
		return false
	}
}
