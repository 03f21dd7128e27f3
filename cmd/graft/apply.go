package main

import (
	"context"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/graft/internal/app/patchrun"
	"github.com/alexisbeaulieu97/graft/internal/logger"
	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/patch"
	"github.com/alexisbeaulieu97/graft/internal/tui"
)

type applyOptions struct {
	Source      sourceFlags
	Root        string
	DryRun      bool
	Strict      bool
	Backup      bool
	BackupDir   string
	Plain       bool
	Verbose     bool
	Interactive bool
}

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a patch set to files on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose
			opts.Interactive = !opts.Plain && isTerminal(cmd.OutOrStdout())

			if err := validateSource(opts.Source); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return applyCmdRunner(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	opts.Source.register(cmd)
	cmd.Flags().StringVar(&opts.Root, "root", ".", "Directory relative target paths are resolved against")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail and leave the file untouched when any anchor is missing")
	cmd.Flags().BoolVar(&opts.Backup, "backup", false, "Keep a timestamped copy of each file before writing")
	cmd.Flags().StringVar(&opts.BackupDir, "backup-dir", "", "Directory for backups (default: next to each file)")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print a line-per-event report instead of the interactive view")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runApply(ctx context.Context, out, errOut io.Writer, opts applyOptions) error {
	cfg, err := loadConfig(opts.Source)
	if err != nil {
		return err
	}

	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: errOut})
	if err != nil {
		return err
	}

	backupDir := cfg.Settings.BackupDir
	if strings.TrimSpace(opts.BackupDir) != "" {
		backupDir = opts.BackupDir
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req := patchrun.Request{
		Config:    cfg,
		Root:      opts.Root,
		DryRun:    opts.DryRun,
		Strict:    opts.Strict || cfg.Settings.Strict,
		Backup:    opts.Backup || cfg.Settings.Backup || strings.TrimSpace(opts.BackupDir) != "",
		BackupDir: backupDir,
		Logger:    log,
	}

	reporter := newConsoleReporter(out, opts.DryRun || opts.Verbose)
	interactive := opts.Interactive
	state := tui.NewModel(cfg, opts.DryRun)

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(state, tea.WithOutput(out))
		go func() {
			final, err := program.Run()
			programErr = err
			if m, ok := final.(tui.Model); ok && m.Cancelled() {
				cancel()
			}
			close(done)
		}()

		req.OnFileStart = func(_, _ int, label string) {
			dispatchTuiMessage(program, &state, tui.FileStartMsg{Label: label})
		}
		req.OnPatch = func(label string, o patch.Outcome) {
			dispatchTuiMessage(program, &state, tui.PatchMsg{Label: label, Outcome: o})
		}
		req.OnFileDone = func(res model.FileResult) {
			dispatchTuiMessage(program, &state, tui.FileDoneMsg{Result: res})
		}
	} else {
		req.OnFileStart = reporter.fileStart
		req.OnPatch = reporter.patch
		req.OnFileDone = reporter.fileDone
	}

	outcome, runErr := patchrun.Run(ctx, req)

	if interactive {
		dispatchTuiMessage(program, &state, tui.RunDoneMsg{Err: runErr})
		<-done
		if programErr != nil {
			return programErr
		}
	}

	if runErr != nil {
		return runErr
	}

	reporter.finish(outcome, cfg.Labels(), cfg.TotalPatches())
	return nil
}

// dispatchTuiMessage forwards msg to the running program, or folds it into
// state directly when no program is attached.
func dispatchTuiMessage(program *tea.Program, state *tui.Model, msg tea.Msg) {
	if program != nil {
		program.Send(msg)
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
