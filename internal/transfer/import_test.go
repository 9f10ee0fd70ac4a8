package transfer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDocument(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "startup.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestNewImporter(t *testing.T) {
	importer := NewImporter("/tmp/autostart")
	if importer == nil {
		t.Fatal("NewImporter should return an Importer")
	}
	if importer.dir != "/tmp/autostart" {
		t.Error("Importer should have the provided directory")
	}
}

func TestRead_ValidDocument(t *testing.T) {
	path := writeDocument(t, t.TempDir(), `{
  "version": "1.0",
  "startup_apps": [
    {"name": "Firefox", "exec": "/usr/bin/firefox", "type": "native", "delay": 0}
  ]
}`)

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if doc.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", doc.Version)
	}
	if len(doc.StartupApps) != 1 || doc.StartupApps[0].Name != "Firefox" {
		t.Errorf("Unexpected entries: %+v", doc.StartupApps)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRead_MalformedDocument(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "not json at all")
	if _, err := Read(path); err == nil {
		t.Error("Expected error for malformed document")
	}
}

func TestRead_MissingStartupAppsList(t *testing.T) {
	path := writeDocument(t, t.TempDir(), `{"version": "2.0"}`)

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(doc.StartupApps) != 0 {
		t.Errorf("Expected no entries, got %+v", doc.StartupApps)
	}
}

func TestImport_WritesEntries(t *testing.T) {
	dir := t.TempDir()
	importer := NewImporter(dir)
	doc := &Document{
		Version: "1.0",
		StartupApps: []Entry{
			{Name: "My App", Exec: "/bin/foo", Type: "native", Delay: 5},
			{Name: "Script", Exec: "/home/user/script.sh", Type: "custom", Delay: 0},
		},
	}

	results := importer.ImportDocument(doc)
	if Imported(results) != 2 {
		t.Fatalf("Expected 2 imported, got %d: %+v", Imported(results), results)
	}

	expected := `[Desktop Entry]
Type=Application
Name=My App
Exec=sh -c 'sleep 5 && /bin/foo'
Hidden=false
X-GNOME-Autostart-enabled=true
X-GNOME-Autostart-Delay=5
`
	data, err := os.ReadFile(filepath.Join(dir, "My_App.desktop"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != expected {
		t.Errorf("Unexpected document:\n%s\nwant:\n%s", data, expected)
	}

	info, err := os.Stat(filepath.Join(dir, "Script.desktop"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("Expected mode 0755, got %o", info.Mode().Perm())
	}
}

func TestImport_NoCommentWritten(t *testing.T) {
	dir := t.TempDir()
	importer := NewImporter(dir)
	doc := &Document{
		StartupApps: []Entry{
			{Name: "App", Exec: "app", Type: "custom"},
		},
	}

	importer.ImportDocument(doc)
	data, err := os.ReadFile(filepath.Join(dir, "App.desktop"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "Comment=") {
		t.Errorf("Import should not write comments, got:\n%s", data)
	}
}

func TestImport_SkipsIncompleteEntries(t *testing.T) {
	dir := t.TempDir()
	importer := NewImporter(dir)
	doc := &Document{
		StartupApps: []Entry{
			{Name: "   ", Exec: "/bin/foo"},
			{Name: "App", Exec: ""},
			{Name: "Good", Exec: "good"},
		},
	}

	results := importer.ImportDocument(doc)
	if Imported(results) != 1 {
		t.Errorf("Expected 1 imported, got %d", Imported(results))
	}
	for _, r := range results[:2] {
		if !errors.Is(r.Error, ErrIncompleteEntry) {
			t.Errorf("Expected ErrIncompleteEntry, got %v", r.Error)
		}
	}

	entries, err := filepath.Glob(filepath.Join(dir, "*.desktop"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry written, got %d", len(entries))
	}
}

func TestImport_NegativeDelayClamps(t *testing.T) {
	dir := t.TempDir()
	importer := NewImporter(dir)
	doc := &Document{
		StartupApps: []Entry{{Name: "App", Exec: "/bin/app", Delay: -10}},
	}

	importer.ImportDocument(doc)
	data, err := os.ReadFile(filepath.Join(dir, "App.desktop"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Exec=/bin/app\n") {
		t.Errorf("Expected bare exec, got:\n%s", data)
	}
	if strings.Contains(string(data), "X-GNOME-Autostart-Delay") {
		t.Errorf("Expected no delay key, got:\n%s", data)
	}
}

func TestImport_FromFile(t *testing.T) {
	autostartDir := t.TempDir()
	path := writeDocument(t, t.TempDir(), `{
  "version": "1.0",
  "startup_apps": [
    {"name": "Firefox", "exec": "/usr/bin/firefox", "type": "native", "delay": 0},
    {"name": "Backup", "exec": "rsync -a /src /dst", "type": "custom", "delay": 60}
  ]
}`)

	importer := NewImporter(autostartDir)
	results, err := importer.Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if Imported(results) != 2 {
		t.Errorf("Expected 2 imported, got %d", Imported(results))
	}

	data, err := os.ReadFile(filepath.Join(autostartDir, "Backup.desktop"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Exec=sh -c 'sleep 60 && rsync -a /src /dst'\n") {
		t.Errorf("Expected wrapped exec, got:\n%s", data)
	}
}

func TestImported_CountsSuccesses(t *testing.T) {
	results := []ImportResult{
		{Success: true},
		{Success: false},
		{Success: true},
	}
	if Imported(results) != 2 {
		t.Errorf("Expected 2, got %d", Imported(results))
	}
}
