package scanner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"startmgr/internal/desktop"
	"startmgr/internal/models"
)

// FlatpakSource lists installed Flatpak applications via the flatpak CLI
type FlatpakSource struct {
	systemRoot string                       // system installation, normally /var/lib/flatpak
	userRoot   string                       // per-user installation under ~/.local/share/flatpak
	runner     func() ([]byte, error)       // runs flatpak list, swapped in tests
	lookPath   func(string) (string, error) // locates the flatpak binary, swapped in tests
}

// NewFlatpakSource creates a FlatpakSource over the standard install roots
func NewFlatpakSource() *FlatpakSource {
	homeDir, _ := os.UserHomeDir()
	return &FlatpakSource{
		systemRoot: "/var/lib/flatpak",
		userRoot:   filepath.Join(homeDir, ".local", "share", "flatpak"),
		runner:     runFlatpakList,
		lookPath:   exec.LookPath,
	}
}

func runFlatpakList() ([]byte, error) {
	return exec.Command("flatpak", "list", "--app", "--columns=application,name").Output()
}

// Available reports whether the flatpak tool is on PATH
func (f *FlatpakSource) Available() bool {
	_, err := f.lookPath("flatpak")
	return err == nil
}

// flatpakItem is one row of flatpak list output
type flatpakItem struct {
	ID   string // application ID, e.g. org.mozilla.firefox
	Name string // display name from the listing
}

// parseFlatpakList parses flatpak list --columns=application,name output.
// Rows without both columns are ignored.
func parseFlatpakList(out string) []flatpakItem {
	var items []flatpakItem
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		if id == "" {
			continue
		}
		items = append(items, flatpakItem{
			ID:   id,
			Name: strings.TrimSpace(parts[1]),
		})
	}
	return items
}

// desktopCandidates returns possible desktop entry locations for an app,
// most authoritative first. Exported entries are preferred because their
// Exec lines already launch through flatpak run.
func (f *FlatpakSource) desktopCandidates(appID string) []string {
	name := appID + ".desktop"
	return []string{
		filepath.Join(f.systemRoot, "exports", "share", "applications", name),
		filepath.Join(f.userRoot, "exports", "share", "applications", name),
		filepath.Join(f.systemRoot, "app", appID, "current", "active", "files", "share", "applications", name),
		filepath.Join(f.userRoot, "app", appID, "current", "active", "files", "share", "applications", name),
	}
}

// desktopFile returns the first existing candidate, or "" when the app
// has no desktop entry installed.
func (f *FlatpakSource) desktopFile(appID string) string {
	for _, path := range f.desktopCandidates(appID) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Apps returns a startup candidate for every installed Flatpak app.
// Apps whose desktop entry is hidden from menus are skipped.
func (f *FlatpakSource) Apps() ([]*models.App, error) {
	out, err := f.runner()
	if err != nil {
		return nil, fmt.Errorf("failed to list flatpak apps: %w", err)
	}

	var apps []*models.App
	for _, item := range parseFlatpakList(string(out)) {
		path := f.desktopFile(item.ID)
		if path == "" {
			// No desktop entry, launch through flatpak run directly
			apps = append(apps, &models.App{
				Name:      item.Name,
				Exec:      "flatpak run " + item.ID,
				Origin:    models.OriginFlatpak,
				PackageID: item.ID,
			})
			continue
		}

		entry, err := desktop.Parse(path)
		if err != nil {
			continue
		}

		execCmd := entry.Exec
		if !strings.HasPrefix(execCmd, "flatpak run") && !strings.HasPrefix(execCmd, "/usr/bin/flatpak run") {
			execCmd = "flatpak run " + item.ID
		}
		apps = append(apps, &models.App{
			Name:       entry.Name,
			Exec:       execCmd,
			Origin:     models.OriginFlatpak,
			SourcePath: path,
			PackageID:  item.ID,
			Icon:       entry.Icon,
		})
	}
	return apps, nil
}
