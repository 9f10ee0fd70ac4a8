package scanner

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"startmgr/internal/inventory"
)

// DebugMode enables debug logging
var DebugMode = false

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if DebugMode {
		fmt.Fprintf(os.Stderr, "[SCANNER] "+format+"\n", args...)
	}
}

// Scanner discovers installed applications across every package source
type Scanner struct {
	desktopDirs []string
	flatpak     *FlatpakSource
	snap        *SnapSource
}

// New creates a Scanner over the default system locations
func New() *Scanner {
	return &Scanner{
		desktopDirs: DefaultDesktopDirs(),
		flatpak:     NewFlatpakSource(),
		snap:        NewSnapSource(),
	}
}

// FlatpakAvailable reports whether the flatpak tool is installed
func (s *Scanner) FlatpakAvailable() bool {
	return s.flatpak.Available()
}

// SnapAvailable reports whether the snap tool is installed
func (s *Scanner) SnapAvailable() bool {
	return s.snap.Available()
}

// Scan builds a fresh inventory from all sources. Native desktop entries
// load first, then Flatpak, then Snap; when two sources claim the same
// name the earlier source keeps the record.
func (s *Scanner) Scan() (*inventory.Inventory, error) {
	start := time.Now()
	debugLog("Starting scan...")

	inv := inventory.New()

	nativeStart := time.Now()
	native := scanDesktopDirs(s.desktopDirs)
	for _, app := range native {
		inv.Add(app)
	}
	debugLog("Native scan found %d apps in %v", len(native), time.Since(nativeStart))

	if s.flatpak.Available() {
		flatpakStart := time.Now()
		apps, err := s.flatpak.Apps()
		if err != nil {
			debugLog("Flatpak listing failed: %v", err)
		}
		added := 0
		for _, app := range apps {
			if inv.Add(app) {
				added++
			}
		}
		debugLog("Flatpak scan found %d apps (%d new) in %v", len(apps), added, time.Since(flatpakStart))
	} else {
		debugLog("flatpak not installed, skipping Flatpak apps")
	}

	if s.snap.Available() {
		snapStart := time.Now()
		apps, err := s.snap.Apps()
		if err != nil {
			debugLog("Snap listing failed: %v", err)
		}
		added := 0
		for _, app := range apps {
			if inv.Add(app) {
				added++
			}
		}
		debugLog("Snap scan found %d apps (%d new) in %v", len(apps), added, time.Since(snapStart))
	} else {
		debugLog("snap not installed, skipping Snap apps")
	}

	debugLog("Total scan found %d apps in %v", inv.Len(), time.Since(start))
	return inv, nil
}

// workerCount sizes the desktop entry parse pool
func workerCount(jobs int) int {
	n := runtime.NumCPU() * 2 // IO-bound, so use more workers
	if n > 16 {
		n = 16 // Cap at 16 workers
	}
	if n > jobs {
		n = jobs
	}
	return n
}
