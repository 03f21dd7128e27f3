package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/graft/internal/app/patchrun"
	"github.com/alexisbeaulieu97/graft/internal/model"
	"github.com/alexisbeaulieu97/graft/internal/patch"
	grafterrors "github.com/alexisbeaulieu97/graft/pkg/errors"
)

type consoleStyles struct {
	applied lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	note    lipgloss.Style
	diffAdd lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		applied: r.NewStyle().Foreground(lipgloss.Color("42")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("214")),
		failed:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		note:    r.NewStyle().Bold(true),
		diffAdd: r.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// consoleReporter prints the line-per-event report used in plain mode.
type consoleReporter struct {
	out      io.Writer
	styles   consoleStyles
	showDiff bool
}

func newConsoleReporter(out io.Writer, showDiff bool) *consoleReporter {
	return &consoleReporter{out: out, styles: newConsoleStyles(out), showDiff: showDiff}
}

func (r *consoleReporter) fileStart(_, _ int, label string) {
	fmt.Fprintf(r.out, "Patching %s...\n", label)
}

func (r *consoleReporter) patch(_ string, o patch.Outcome) {
	if o.Matched {
		fmt.Fprintln(r.out, r.styles.applied.Render("Applied patch: "+o.Name))
		return
	}
	fmt.Fprintln(r.out, r.styles.skipped.Render(fmt.Sprintf("Skipped patch: %s (anchor not found)", o.Name)))
}

func (r *consoleReporter) fileDone(res model.FileResult) {
	switch res.Status {
	case model.StatusPatched:
		fmt.Fprintf(r.out, "%s patched successfully.\n", res.Label)
		if res.BackupPath != "" {
			fmt.Fprintf(r.out, "Backup written to %s\n", res.BackupPath)
		}
	case model.StatusWouldPatch:
		fmt.Fprintf(r.out, "%s would be patched (dry run).\n", res.Label)
		if r.showDiff && res.Diff != "" {
			fmt.Fprintln(r.out, r.renderDiff(res.Diff))
		}
	case model.StatusUnchanged:
		fmt.Fprintf(r.out, "%s left unchanged.\n", res.Label)
	case model.StatusFailed:
		fmt.Fprintln(r.out, r.styles.failed.Render(fmt.Sprintf("%s was not patched.", res.Label)))
	}
	fmt.Fprintln(r.out)
}

func (r *consoleReporter) renderDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			lines[i] = r.styles.diffAdd.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// finish prints the closing summary and review advisory.
func (r *consoleReporter) finish(outcome *patchrun.Outcome, labels []string, totalPatches int) {
	applied, skipped := outcome.Applied(), outcome.Skipped()

	switch {
	case outcome.DryRun:
		fmt.Fprintf(r.out, "Done! Dry run: %d of %d patches would apply; no files were written.\n", applied, totalPatches)
	case skipped == 0:
		fmt.Fprintln(r.out, "Done! All patches applied successfully.")
	default:
		fmt.Fprintf(r.out, "Done! %d of %d patches applied; %d skipped (anchor not found).\n", applied, totalPatches, skipped)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.note.Render(fmt.Sprintf("NOTE: These patches modify %s.", joinLabels(labels))))
	fmt.Fprintln(r.out, "Review the changes before committing.")
	for _, root := range outcome.GitRoots() {
		fmt.Fprintf(r.out, "Run `git diff` in %s to see what changed.\n", root)
	}
}

// joinLabels renders "a", "a and b" or "a, b and c".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return "no files"
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}

// renderError formats err for the terminal with a hint for known failures.
func renderError(w io.Writer, err error) string {
	styles := newConsoleStyles(w)
	msg := styles.failed.Render("Error:") + " " + err.Error()

	var anchorErr *grafterrors.AnchorError
	var parseErr *grafterrors.ParseError
	var validationErr *grafterrors.ValidationError
	switch {
	case errors.As(err, &anchorErr):
		msg += "\nThe file was left untouched. Re-run without --strict to apply the patches that do match."
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		msg += "\nRun `graft validate -c <file>` to check the configuration."
	}
	return msg
}
