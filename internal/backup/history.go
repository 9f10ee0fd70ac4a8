package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// History keeps git-versioned snapshots of the autostart directory. Each
// snapshot is one commit holding the directory's .desktop entries.
type History struct {
	dir          string // repository worktree
	autostartDir string
	repo         *git.Repository
}

// Open opens the history repository at dir, initializing it on first use.
func Open(dir, autostartDir string) (*History, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history repository: %w", err)
	}

	return &History{dir: dir, autostartDir: autostartDir, repo: repo}, nil
}

// Dir returns the repository worktree path.
func (h *History) Dir() string {
	return h.dir
}

// Snapshot copies the current autostart entries into the repository and
// commits them under message. It returns the short commit hash, or "" when
// nothing changed since the last snapshot.
func (h *History) Snapshot(message string) (string, error) {
	if _, err := h.syncWorktree(); err != nil {
		return "", err
	}

	worktree, err := h.repo.Worktree()
	if err != nil {
		return "", err
	}

	status, err := worktree.Status()
	if err != nil {
		return "", err
	}
	if status.IsClean() {
		return "", nil
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("failed to stage snapshot: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "startmgr",
			Email: "startmgr@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return hash.String()[:7], nil
}

// Entries returns the most recent snapshots, newest first.
func (h *History) Entries(count int) ([]Entry, error) {
	head, err := h.repo.Head()
	if err != nil {
		// No commits yet
		return nil, nil
	}

	commitIter, err := h.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = commitIter.ForEach(func(c *object.Commit) error {
		if len(entries) >= count {
			return storer.ErrStop
		}
		entries = append(entries, Entry{
			Hash:    c.Hash.String()[:7],
			Message: strings.Split(c.Message, "\n")[0],
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// syncWorktree mirrors the autostart directory's .desktop entries into the
// repository worktree and returns the number of entries present.
func (h *History) syncWorktree() (int, error) {
	stale, err := filepath.Glob(filepath.Join(h.dir, "*.desktop"))
	if err != nil {
		return 0, err
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return 0, err
		}
	}

	entries, err := filepath.Glob(filepath.Join(h.autostartDir, "*.desktop"))
	if err != nil {
		return 0, err
	}

	for _, path := range entries {
		dest := filepath.Join(h.dir, filepath.Base(path))
		if err := copyFile(path, dest); err != nil {
			return 0, err
		}
	}

	return len(entries), nil
}

// copyFile copies a file from src to dst, preserving permissions
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	srcInfo, err := os.Stat(src)
	if err == nil {
		os.Chmod(dst, srcInfo.Mode())
	}

	return nil
}
