// Package gitinfo reports how a patch target relates to the git repository that
// contains it.
package gitinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Status describes a file inside a git working tree.
type Status struct {
	// Root is the working tree root.
	Root string
	// Rel is the file path relative to Root, slash separated.
	Rel string
	// Tracked is true when the file exists in HEAD or is staged for addition.
	Tracked bool
	// Dirty is true when a tracked file has staged or unstaged changes.
	Dirty bool
}

// Inspect locates the repository enclosing path. It returns nil, nil when path
// is not inside a git working tree.
func Inspect(path string) (*Status, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, fmt.Errorf("open repository for %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, nil
		}
		return nil, fmt.Errorf("open worktree for %s: %w", path, err)
	}

	root := wt.Filesystem.Root()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, fmt.Errorf("relate %s to %s: %w", path, root, err)
	}

	st := &Status{Root: root, Rel: filepath.ToSlash(rel)}
	st.Tracked = inHead(repo, st.Rel)

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read worktree status: %w", err)
	}

	// Status.File would insert a placeholder entry for clean files.
	if fs, ok := status[st.Rel]; ok {
		switch {
		case fs.Worktree == git.Untracked:
		case fs.Staging == git.Added:
			st.Tracked = true
			st.Dirty = true
		default:
			st.Dirty = fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified
		}
	}
	return st, nil
}

func inHead(repo *git.Repository, rel string) bool {
	head, err := repo.Head()
	if err != nil {
		return false
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return false
	}
	if _, err := commit.File(rel); err != nil {
		return false
	}
	return true
}
