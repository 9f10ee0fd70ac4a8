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

// SnapSource lists installed Snap packages via the snap CLI
type SnapSource struct {
	desktopDir string                       // snapd desktop entries, normally /var/lib/snapd/desktop/applications
	runner     func() ([]byte, error)       // runs snap list, swapped in tests
	lookPath   func(string) (string, error) // locates the snap binary, swapped in tests
}

// NewSnapSource creates a SnapSource over the standard snapd location
func NewSnapSource() *SnapSource {
	return &SnapSource{
		desktopDir: "/var/lib/snapd/desktop/applications",
		runner:     runSnapList,
		lookPath:   exec.LookPath,
	}
}

func runSnapList() ([]byte, error) {
	return exec.Command("snap", "list").Output()
}

// Available reports whether the snap tool is on PATH
func (s *SnapSource) Available() bool {
	_, err := s.lookPath("snap")
	return err == nil
}

// parseSnapList extracts package names from snap list output,
// skipping the header row.
func parseSnapList(out string) []string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return nil
	}
	var names []string
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}

// Apps returns a startup candidate for every installed snap. Snaps whose
// desktop entry is hidden from menus are skipped.
func (s *SnapSource) Apps() ([]*models.App, error) {
	out, err := s.runner()
	if err != nil {
		return nil, fmt.Errorf("failed to list snap packages: %w", err)
	}

	var apps []*models.App
	for _, name := range parseSnapList(string(out)) {
		path := filepath.Join(s.desktopDir, name+"_"+name+".desktop")
		if _, err := os.Stat(path); err != nil {
			// No desktop entry, fall back to snap run
			apps = append(apps, &models.App{
				Name:      name,
				Exec:      "snap run " + name,
				Origin:    models.OriginSnap,
				PackageID: name,
			})
			continue
		}

		// Snap desktop entries already launch through the snap wrapper,
		// so the parsed Exec is kept as is
		entry, err := desktop.Parse(path)
		if err != nil {
			continue
		}
		apps = append(apps, &models.App{
			Name:       entry.Name,
			Exec:       entry.Exec,
			Origin:     models.OriginSnap,
			SourcePath: path,
			PackageID:  name,
			Icon:       entry.Icon,
		})
	}
	return apps, nil
}
