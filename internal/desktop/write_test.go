package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentRender_KeyOrder(t *testing.T) {
	doc := &Document{
		Name:  "Firefox",
		Exec:  "/usr/bin/firefox",
		Delay: 5,
		Meta: []KV{
			{"Icon", "firefox"},
			{"Categories", "Network;WebBrowser;"},
		},
		Comment: "Flatpak: org.mozilla.firefox",
	}

	got := doc.Render()
	want := `[Desktop Entry]
Type=Application
Name=Firefox
Exec=sh -c 'sleep 5 && /usr/bin/firefox'
Hidden=false
X-GNOME-Autostart-enabled=true
Icon=firefox
Categories=Network;WebBrowser;
Comment=Flatpak: org.mozilla.firefox
X-GNOME-Autostart-Delay=5
`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestDocumentRender_MetaCommentSuppressesFallback(t *testing.T) {
	doc := &Document{
		Name:    "App",
		Exec:    "/bin/app",
		Meta:    []KV{{"Comment", "From the source entry"}},
		Comment: "Snap Application",
	}

	got := doc.Render()
	if !strings.Contains(got, "Comment=From the source entry\n") {
		t.Error("Expected the copied comment to be written")
	}
	if strings.Contains(got, "Snap Application") {
		t.Error("Fallback comment should be suppressed when meta has one")
	}
}

func TestDocumentRender_NoDelayOmitsDelayKey(t *testing.T) {
	doc := &Document{Name: "App", Exec: "/bin/app"}

	got := doc.Render()
	if strings.Contains(got, "X-GNOME-Autostart-Delay") {
		t.Error("Delay key should be absent when delay is 0")
	}
	if !strings.Contains(got, "Exec=/bin/app\n") {
		t.Errorf("Expected bare exec, got:\n%s", got)
	}
}

func TestDocumentWriteFile_Executable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.desktop")
	doc := &Document{Name: "App", Exec: "/bin/app"}

	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o755 {
		t.Errorf("Expected mode 0755, got %o", perm)
	}
}

func TestLoad_MissingSection(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "bad.desktop", "Name=No Section\nExec=/bin/x\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for document without [Desktop Entry]")
	}
}

func TestFileGetSetDelete(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", "[Desktop Entry]\nType=Application\nName=App\nExec=/bin/app\n")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := f.Get("Name"); got != "App" {
		t.Errorf("Get(Name) = %s, want App", got)
	}
	if got := f.Get("Missing"); got != "" {
		t.Errorf("Get(Missing) = %q, want empty", got)
	}
	if f.Has("Missing") {
		t.Error("Has(Missing) should be false")
	}

	f.Set("Comment", "hello")
	if got := f.Get("Comment"); got != "hello" {
		t.Errorf("Get(Comment) after Set = %s, want hello", got)
	}

	f.Delete("Comment")
	if f.Has("Comment") {
		t.Error("Comment should be gone after Delete")
	}
}

func TestFileSetStartupDelay_PreservesOtherKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", `[Desktop Entry]
Type=Application
Name=App
Exec=/bin/app
Icon=app-icon
X-Custom-Key=keepme
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f.SetStartupDelay("/bin/app", 10)
	if err := f.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := again.Get("Exec"); got != "sh -c 'sleep 10 && /bin/app'" {
		t.Errorf("Exec after delay = %q", got)
	}
	if got := again.Get("X-GNOME-Autostart-Delay"); got != "10" {
		t.Errorf("Delay key = %q, want 10", got)
	}
	if got := again.Get("Icon"); got != "app-icon" {
		t.Errorf("Icon was not preserved, got %q", got)
	}
	if got := again.Get("X-Custom-Key"); got != "keepme" {
		t.Errorf("Unknown key was not preserved, got %q", got)
	}
	if got := again.Get("X-GNOME-Autostart-enabled"); got != "true" {
		t.Errorf("Enabled flag = %q, want true", got)
	}
}

func TestFileSetStartupDelay_ZeroRemovesWrapper(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", `[Desktop Entry]
Type=Application
Name=App
Exec=sh -c 'sleep 9 && /bin/app'
X-GNOME-Autostart-Delay=9
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	f.SetStartupDelay("/bin/app", 0)
	if err := f.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := again.Get("Exec"); got != "/bin/app" {
		t.Errorf("Exec after removing delay = %q, want /bin/app", got)
	}
	if again.Has("X-GNOME-Autostart-Delay") {
		t.Error("Delay key should be removed when delay is 0")
	}
}
