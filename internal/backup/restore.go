package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Entry describes one snapshot in the history.
type Entry struct {
	Hash    string
	Message string
	When    time.Time
}

// Date returns the snapshot time for display.
func (e Entry) Date() string {
	return e.When.Format("2006-01-02 15:04")
}

// Age returns a relative description of the snapshot time.
func (e Entry) Age() string {
	d := time.Since(e.When)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Restore replaces the autostart directory's entries with the contents of
// the given snapshot. It returns the number of entries written. The caller
// reloads the inventory afterwards.
func (h *History) Restore(revision string) (int, error) {
	hash, err := h.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return 0, fmt.Errorf("unknown snapshot %s: %w", revision, err)
	}

	commit, err := h.repo.CommitObject(*hash)
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot %s: %w", revision, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return 0, err
	}

	// Clear current entries, then write the snapshot's
	current, err := filepath.Glob(filepath.Join(h.autostartDir, "*.desktop"))
	if err != nil {
		return 0, err
	}
	for _, path := range current {
		if err := os.Remove(path); err != nil {
			return 0, fmt.Errorf("failed to clear %s: %w", path, err)
		}
	}

	restored := 0
	err = tree.Files().ForEach(func(f *object.File) error {
		if !strings.HasSuffix(f.Name, ".desktop") {
			return nil
		}
		contents, err := f.Contents()
		if err != nil {
			return err
		}
		target := filepath.Join(h.autostartDir, filepath.Base(f.Name))
		if err := os.WriteFile(target, []byte(contents), 0o755); err != nil {
			return err
		}
		restored++
		return nil
	})
	if err != nil {
		return restored, fmt.Errorf("failed to restore snapshot: %w", err)
	}

	return restored, nil
}
