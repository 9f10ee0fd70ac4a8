// Package autostart keeps the per-user autostart directory in sync with
// the application inventory. Autostart entries are matched to inventory
// records by display name, never by file name.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"startmgr/internal/desktop"
	"startmgr/internal/inventory"
	"startmgr/internal/models"
)

// Sentinel errors reported back to the caller. AlreadyEnabled and
// AlreadyDisabled are benign no-ops, not failures.
var (
	ErrAlreadyEnabled  = errors.New("app is already in startup")
	ErrAlreadyDisabled = errors.New("app is not in startup")
	ErrNotFound        = errors.New("no autostart entry found")
	ErrNotEnabled      = errors.New("app must be in startup first")
	ErrInvalidInput    = errors.New("invalid input")
)

// Manager owns the autostart directory
type Manager struct {
	dir string
}

// DefaultDir returns the per-user autostart directory
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "autostart")
}

// NewManager creates a Manager rooted at dir, creating it when missing
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create autostart directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Dir returns the autostart directory path
func (m *Manager) Dir() string {
	return m.dir
}

// entryPath returns the file an app's autostart entry is written to
func (m *Manager) entryPath(name string) string {
	return filepath.Join(m.dir, desktop.AutostartFileName(name))
}

// entries returns the autostart desktop files in stable order
func (m *Manager) entries() []string {
	paths, err := filepath.Glob(filepath.Join(m.dir, "*.desktop"))
	if err != nil {
		return nil
	}
	sort.Strings(paths)
	return paths
}

// findByName returns the autostart file whose Name key equals name.
// Files that fail to parse are skipped.
func (m *Manager) findByName(name string) (string, bool) {
	for _, path := range m.entries() {
		file, err := desktop.Load(path)
		if err != nil {
			continue
		}
		if file.Get("Name") == name {
			return path, true
		}
	}
	return "", false
}

// Enable writes an autostart entry for the app and marks it enabled.
// Cosmetic keys carry over from the app's source desktop file so desktop
// environments keep showing the right icon and description.
func (m *Manager) Enable(app *models.App) error {
	if app.Enabled {
		return ErrAlreadyEnabled
	}

	doc := buildDocument(app)
	if err := doc.WriteFile(m.entryPath(app.Name)); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}

	app.Enabled = true
	return nil
}

// Disable deletes the app's autostart entry and clears its startup state
func (m *Manager) Disable(app *models.App) error {
	if !app.Enabled {
		return ErrAlreadyDisabled
	}

	path, ok := m.findByName(app.Name)
	if !ok {
		return ErrNotFound
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}

	app.Enabled = false
	app.Delay = 0
	return nil
}

// SetDelay rewrites the app's autostart entry with a new startup delay.
// Negative values clamp to zero, which removes the wrapper entirely.
// Keys the entry picked up elsewhere are preserved.
func (m *Manager) SetDelay(app *models.App, delay int) error {
	if !app.Enabled {
		return ErrNotEnabled
	}
	if delay < 0 {
		delay = 0
	}

	path, ok := m.findByName(app.Name)
	if !ok {
		return ErrNotFound
	}
	file, err := desktop.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load autostart entry: %w", err)
	}
	file.SetStartupDelay(app.Exec, delay)
	if err := file.Save(); err != nil {
		return fmt.Errorf("failed to update autostart entry: %w", err)
	}

	app.Delay = delay
	return nil
}

// CustomTarget returns the autostart path a custom app would be written
// to and whether a file already exists there. Callers confirm overwrites
// before calling AddCustom.
func (m *Manager) CustomTarget(name string) (string, bool) {
	path := m.entryPath(name)
	_, err := os.Stat(path)
	return path, err == nil
}

// AddCustom writes an autostart entry for a user-defined command and
// inserts the new record into the inventory
func (m *Manager) AddCustom(inv *inventory.Inventory, name, command string, origin models.Origin, delay int) (*models.App, error) {
	name = strings.TrimSpace(name)
	command = strings.TrimSpace(command)
	if name == "" || command == "" {
		return nil, fmt.Errorf("%w: name and command are required", ErrInvalidInput)
	}
	if delay < 0 {
		delay = 0
	}

	path := m.entryPath(name)
	doc := &desktop.Document{
		Name:    name,
		Exec:    command,
		Delay:   delay,
		Comment: customComment(origin),
	}
	if err := doc.WriteFile(path); err != nil {
		return nil, fmt.Errorf("failed to write autostart entry: %w", err)
	}

	app := &models.App{
		Name:       name,
		Exec:       command,
		Origin:     origin,
		SourcePath: path,
		Enabled:    true,
		Delay:      delay,
	}
	inv.Put(app)
	return app, nil
}

// ReconcileResult summarizes one reconcile pass
type ReconcileResult struct {
	Matched int // inventory records marked enabled
	Added   int // records synthesized from unmatched autostart entries
	Skipped int // unreadable or incomplete entries
}

// Reconcile applies autostart directory state onto the inventory.
// Records matching an entry's name become enabled with the decoded
// delay; entries with no match are inserted as new records. Running it
// twice over an unchanged directory yields identical state.
func (m *Manager) Reconcile(inv *inventory.Inventory) ReconcileResult {
	var res ReconcileResult

	for _, path := range m.entries() {
		file, err := desktop.Load(path)
		if err != nil {
			res.Skipped++
			continue
		}
		name := strings.TrimSpace(file.Get("Name"))
		rawExec := strings.TrimSpace(file.Get("Exec"))
		if name == "" || rawExec == "" {
			res.Skipped++
			continue
		}

		command, delay := decodeExec(file, rawExec)

		if app, ok := inv.Get(name); ok {
			app.Enabled = true
			app.Delay = delay
			res.Matched++
			continue
		}

		inv.Put(&models.App{
			Name:       name,
			Exec:       command,
			Origin:     inferOrigin(command),
			SourcePath: path,
			Enabled:    true,
			Delay:      delay,
		})
		res.Added++
	}
	return res
}

// PreviewEnable returns the diff between the app's current autostart
// entry, if any, and the document Enable would write for it
func (m *Manager) PreviewEnable(app *models.App) *DiffResult {
	path := m.entryPath(app.Name)
	current := ""
	if content, err := os.ReadFile(path); err == nil {
		current = string(content)
	}
	result := DiffStrings(current, buildDocument(app).Render())
	result.OldPath = path
	result.NewPath = path
	return result
}

// buildDocument renders the autostart document Enable writes for app
func buildDocument(app *models.App) *desktop.Document {
	return &desktop.Document{
		Name:    app.Name,
		Exec:    app.Exec,
		Delay:   app.Delay,
		Meta:    copyMeta(app.SourcePath),
		Comment: defaultComment(app),
	}
}

// metaKeys are the cosmetic keys carried over from the source document
var metaKeys = []string{"Icon", "Comment", "Categories", "GenericName", "Keywords"}

// copyMeta loads the cosmetic keys preserved when enabling an app
func copyMeta(sourcePath string) []desktop.KV {
	if sourcePath == "" {
		return nil
	}
	file, err := desktop.Load(sourcePath)
	if err != nil {
		return nil
	}
	var meta []desktop.KV
	for _, key := range metaKeys {
		if file.Has(key) {
			meta = append(meta, desktop.KV{Key: key, Value: file.Get(key)})
		}
	}
	return meta
}

// defaultComment returns the origin comment written when the source
// document provides none
func defaultComment(app *models.App) string {
	switch app.Origin {
	case models.OriginFlatpak:
		return "Flatpak: " + app.PackageID
	case models.OriginSnap:
		return "Snap Application"
	case models.OriginCustom:
		return "Custom Application"
	default:
		return ""
	}
}

// customComment returns the Comment written for user-defined entries
func customComment(origin models.Origin) string {
	switch origin {
	case models.OriginFlatpak:
		return "Custom Flatpak Application"
	case models.OriginSnap:
		return "Custom Snap Application"
	default:
		return "Custom Application"
	}
}

// decodeExec extracts the effective command and delay from a raw Exec
// value. A delay wrapper wins; otherwise the dedicated delay key is read.
func decodeExec(file *desktop.File, rawExec string) (string, int) {
	if command, delay, ok := desktop.UnwrapDelay(rawExec); ok {
		return command, delay
	}
	delay, err := strconv.Atoi(file.Get("X-GNOME-Autostart-Delay"))
	if err != nil || delay < 0 {
		delay = 0
	}
	return rawExec, delay
}

// inferOrigin guesses provenance for an autostart entry with no
// inventory match. Both the bare and absolute tool invocations count.
func inferOrigin(command string) models.Origin {
	switch {
	case strings.HasPrefix(command, "flatpak run"), strings.HasPrefix(command, "/usr/bin/flatpak run"):
		return models.OriginFlatpak
	case strings.HasPrefix(command, "snap run"), strings.HasPrefix(command, "/usr/bin/snap run"):
		return models.OriginSnap
	default:
		return models.OriginCustom
	}
}
