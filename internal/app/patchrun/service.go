// Package patchrun applies a patch-set configuration to files on disk.
package patchrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/graft/internal/changeset"
	"github.com/alexisbeaulieu97/graft/internal/config"
	"github.com/alexisbeaulieu97/graft/internal/fileops"
	"github.com/alexisbeaulieu97/graft/internal/gitinfo"
	"github.com/alexisbeaulieu97/graft/internal/logger"
	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/patch"
	"github.com/alexisbeaulieu97/graft/pkg/diff"
	grafterrors "github.com/alexisbeaulieu97/graft/pkg/errors"
)

// Request configures a patch run.
type Request struct {
	Config *config.Config
	// Root is the directory relative target paths are joined onto. Empty
	// means the working directory.
	Root      string
	DryRun    bool
	Strict    bool
	Backup    bool
	BackupDir string
	Logger    *logger.Logger

	OnFileStart func(index, total int, label string)
	OnPatch     func(label string, outcome patch.Outcome)
	OnFileDone  func(result model.FileResult)
}

// Outcome captures everything a run did, including the files processed before
// a failure.
type Outcome struct {
	RunID    string
	DryRun   bool
	Files    []model.FileResult
	Duration time.Duration
}

// Applied counts matched patches across all files.
func (o *Outcome) Applied() int {
	return o.count(func(r *model.FileResult) int { return len(r.Applied()) })
}

// Skipped counts unmatched patches across all files.
func (o *Outcome) Skipped() int {
	return o.count(func(r *model.FileResult) int { return len(r.Skipped()) })
}

// Changed counts files that were (or in dry-run would be) rewritten.
func (o *Outcome) Changed() int {
	return o.count(func(r *model.FileResult) int {
		if r.Changed() {
			return 1
		}
		return 0
	})
}

func (o *Outcome) count(fn func(*model.FileResult) int) int {
	if o == nil {
		return 0
	}
	total := 0
	for i := range o.Files {
		total += fn(&o.Files[i])
	}
	return total
}

// GitRoots lists the distinct repository roots of the processed files in
// first-seen order.
func (o *Outcome) GitRoots() []string {
	if o == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var roots []string
	for _, f := range o.Files {
		if f.Git == nil {
			continue
		}
		if _, ok := seen[f.Git.Root]; ok {
			continue
		}
		seen[f.Git.Root] = struct{}{}
		roots = append(roots, f.Git.Root)
	}
	return roots
}

// Run patches every file in the configuration, in order. It stops at the first
// file that fails and returns the partial outcome together with the error.
func Run(ctx context.Context, req Request) (*Outcome, error) {
	if req.Config == nil {
		return nil, errors.New("patch run requires a configuration")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	started := time.Now()
	outcome := &Outcome{RunID: uuid.NewString(), DryRun: req.DryRun}

	log := req.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithFields(map[string]any{
		"run_id":  outcome.RunID,
		"config":  req.Config.Name,
		"dry_run": req.DryRun,
	})
	log.Info("starting patch run", "files", len(req.Config.Files), "patches", req.Config.TotalPatches())

	total := len(req.Config.Files)
	for i, spec := range req.Config.Files {
		if err := ctx.Err(); err != nil {
			log.Warn("patch run cancelled", "completed", i)
			outcome.Duration = time.Since(started)
			return outcome, err
		}

		label := spec.DisplayName()
		if req.OnFileStart != nil {
			req.OnFileStart(i, total, label)
		}

		result := patchFile(req, spec, log.With("file", label))
		outcome.Files = append(outcome.Files, result)

		if req.OnFileDone != nil {
			req.OnFileDone(result)
		}
		if result.Error != nil {
			outcome.Duration = time.Since(started)
			log.Error(result.Error, "patch run failed")
			return outcome, result.Error
		}
	}

	outcome.Duration = time.Since(started)
	log.Info("patch run finished",
		"applied", outcome.Applied(),
		"skipped", outcome.Skipped(),
		"changed_files", outcome.Changed(),
		"duration", outcome.Duration.String(),
	)
	return outcome, nil
}

func patchFile(req Request, spec config.FileSpec, log *logger.Logger) model.FileResult {
	started := time.Now()
	label := spec.DisplayName()
	result := model.FileResult{Label: label, Path: spec.Path, Status: model.StatusRunning}

	fail := func(err error) model.FileResult {
		result.Status = model.StatusFailed
		result.Error = err
		result.Duration = time.Since(started)
		return result
	}

	path, err := fileops.Resolve(req.Root, spec.Path)
	if err != nil {
		return fail(grafterrors.NewExecutionError(label, fmt.Errorf("resolve %s: %w", spec.Path, err)))
	}
	result.Path = path

	state, err := fileops.Read(path, spec.EffectiveEncoding(req.Config.Settings))
	if err != nil {
		return fail(grafterrors.NewExecutionError(label, err))
	}
	result.Path = state.Path
	result.BeforeHash = fileops.Fingerprint(state.Raw)

	gitStatus, err := gitinfo.Inspect(state.Path)
	if err != nil {
		log.Warn("could not inspect git status", "error", err.Error())
	}
	result.Git = gitStatus
	if gitStatus != nil && gitStatus.Dirty {
		log.Warn("file has uncommitted changes", "repo", gitStatus.Root)
	}

	applied := patch.ApplyWith(state.Content, spec.Descriptors(), func(o patch.Outcome) {
		if o.Matched {
			log.Debug("patch applied",
				"patch", o.Name,
				"mode", o.Mode.String(),
				"offset", o.Position.Offset,
				"line", o.Position.Line,
			)
		} else {
			log.Warn("anchor not found", "patch", o.Name, "mode", o.Mode.String())
		}
		if req.OnPatch != nil {
			req.OnPatch(label, o)
		}
	})
	result.Outcomes = applied.Outcomes

	summary := diff.Insertions(state.Content, applied.Text)
	if !summary.InsertOnly() {
		return fail(grafterrors.NewExecutionError(label,
			fmt.Errorf("patched content removes %d original characters", summary.Deleted)))
	}
	result.Inserted = summary.Inserted

	if unmatched := applied.UnmatchedNames(); req.Strict && len(unmatched) > 0 {
		return fail(grafterrors.NewAnchorError(label, unmatched))
	}

	if !applied.Changed() {
		result.Status = model.StatusUnchanged
		result.AfterHash = result.BeforeHash
		result.Duration = time.Since(started)
		log.Info("file content unchanged")
		return result
	}

	result.Diff = changeset.Generate(state.Content, applied.Text, label).Diff

	encoded, err := fileops.Encode(applied.Text, state.Encoding)
	if err != nil {
		return fail(grafterrors.NewExecutionError(label, err))
	}
	result.AfterHash = fileops.Fingerprint(encoded)

	if req.DryRun {
		result.Status = model.StatusWouldPatch
		result.Duration = time.Since(started)
		log.Info("dry run: file not written", "inserted", summary.Inserted)
		return result
	}

	if req.Backup {
		backup, err := fileops.Backup(state.Path, req.BackupDir, state.Raw, state.Permissions)
		if err != nil {
			return fail(grafterrors.NewExecutionError(label, err))
		}
		result.BackupPath = backup
		log.Debug("backup written", "backup", backup)
	}

	if err := fileops.WriteAtomic(state.Path, encoded, state.Permissions); err != nil {
		return fail(grafterrors.NewExecutionError(label, err))
	}

	result.Status = model.StatusPatched
	result.Duration = time.Since(started)
	log.Info("file patched",
		"inserted", summary.Inserted,
		"before", result.BeforeHash,
		"after", result.AfterHash,
	)
	return result
}
