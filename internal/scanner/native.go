package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"startmgr/internal/desktop"
	"startmgr/internal/models"
)

// DefaultDesktopDirs returns the desktop entry directories in precedence
// order. Earlier directories win when two entries share a name.
func DefaultDesktopDirs() []string {
	homeDir, _ := os.UserHomeDir()
	return []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		filepath.Join(homeDir, ".local", "share", "applications"),
	}
}

// scanDesktopDirs parses desktop entries from each directory in order,
// keeping the first entry seen for every name.
func scanDesktopDirs(dirs []string) []*models.App {
	var apps []*models.App
	seen := make(map[string]bool)
	for _, dir := range dirs {
		for _, entry := range parseDir(dir) {
			if seen[entry.Name] {
				continue
			}
			seen[entry.Name] = true
			apps = append(apps, &models.App{
				Name:       entry.Name,
				Exec:       entry.Exec,
				Origin:     models.OriginNative,
				SourcePath: entry.Path,
				Icon:       entry.Icon,
			})
		}
	}
	return apps
}

// parseDir parses every desktop file in dir using a worker pool. Results
// come back in file name order so duplicate handling stays deterministic.
func parseDir(dir string) []desktop.Entry {
	paths, err := filepath.Glob(filepath.Join(dir, "*.desktop"))
	if err != nil || len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	// Workers write to distinct slots, so no locking is needed
	parsed := make([]*desktop.Entry, len(paths))
	jobs := make(chan int, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workerCount(len(paths)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				entry, err := desktop.Parse(paths[idx])
				if err != nil {
					continue
				}
				parsed[idx] = entry
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var entries []desktop.Entry
	for _, entry := range parsed {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries
}
