package components

import (
	"strings"
	"testing"

	"startmgr/internal/autostart"
)

func TestNewDiffPanel(t *testing.T) {
	dp := NewDiffPanel()

	if dp == nil {
		t.Fatal("NewDiffPanel should return a DiffPanel")
	}
	if dp.Width != 80 {
		t.Errorf("Expected width 80, got %d", dp.Width)
	}
	if dp.Height != 20 {
		t.Errorf("Expected height 20, got %d", dp.Height)
	}
	if dp.ScrollOffset != 0 {
		t.Errorf("Expected scrollOffset 0, got %d", dp.ScrollOffset)
	}
}

func TestDiffPanel_SetDiff(t *testing.T) {
	dp := NewDiffPanel()
	dp.ScrollOffset = 7
	result := autostart.DiffStrings("Exec=firefox\n", "Exec=firefox\nX-GNOME-Autostart-Delay=10\n")

	dp.SetDiff(result, "Firefox")

	if dp.DiffResult != result {
		t.Error("DiffResult should be set")
	}
	if dp.AppName != "Firefox" {
		t.Errorf("Expected Firefox, got %s", dp.AppName)
	}
	if dp.ScrollOffset != 0 {
		t.Error("ScrollOffset should be reset")
	}
}

func TestDiffPanel_ScrollUp(t *testing.T) {
	dp := NewDiffPanel()
	dp.ScrollOffset = 5

	dp.ScrollUp()
	if dp.ScrollOffset != 4 {
		t.Errorf("Expected 4, got %d", dp.ScrollOffset)
	}

	dp.ScrollOffset = 0
	dp.ScrollUp()
	if dp.ScrollOffset != 0 {
		t.Error("ScrollOffset should not go below 0")
	}
}

func TestDiffPanel_ScrollDown(t *testing.T) {
	dp := NewDiffPanel()

	dp.ScrollDown()
	if dp.ScrollOffset != 1 {
		t.Errorf("Expected 1, got %d", dp.ScrollOffset)
	}

	dp.ScrollDown()
	if dp.ScrollOffset != 2 {
		t.Errorf("Expected 2, got %d", dp.ScrollOffset)
	}
}

func TestDiffPanel_ToggleHighlight(t *testing.T) {
	dp := NewDiffPanel()

	// enableHighlight starts as true
	dp.ToggleHighlight()
	// After toggle it should be false, toggle again
	dp.ToggleHighlight()
	// Just verify no panic
}

func TestDiffPanel_View(t *testing.T) {
	dp := NewDiffPanel()
	dp.Width = 80
	dp.Height = 20

	// Empty result
	view := dp.View()
	if !strings.Contains(view, "No changes to preview") {
		t.Errorf("Expected placeholder without result, got %q", view)
	}

	// With result
	result := autostart.DiffStrings(
		"[Desktop Entry]\nExec=spotify\n",
		"[Desktop Entry]\nExec=spotify --minimized\n",
	)
	dp.SetDiff(result, "Spotify")

	view = dp.View()
	if view == "" {
		t.Error("View should return non-empty string")
	}
	if !strings.Contains(view, "Spotify") {
		t.Error("View should include the app name")
	}
	if !strings.Contains(view, "Preview Changes") {
		t.Error("View should include the panel title")
	}
}

func TestDiffPanel_ViewIdentical(t *testing.T) {
	dp := NewDiffPanel()
	dp.SetDiff(autostart.DiffStrings("same\n", "same\n"), "Firefox")

	view := dp.View()
	if !strings.Contains(view, "No changes to apply") {
		t.Errorf("Expected identical notice, got %q", view)
	}
}

func TestDiffPanel_ViewFileCreated(t *testing.T) {
	dp := NewDiffPanel()
	dp.DiffResult = &autostart.DiffResult{
		NewPath:   "/home/user/.config/autostart/spotify.desktop",
		OldExists: false,
		NewExists: true,
		Lines: []autostart.DiffLine{
			{Type: autostart.DiffInsert, Content: "[Desktop Entry]"},
			{Type: autostart.DiffInsert, Content: "Exec=spotify"},
		},
		Added: 2,
	}

	view := dp.View()
	if !strings.Contains(view, "file will be created") {
		t.Errorf("Expected creation notice, got %q", view)
	}
	if !strings.Contains(view, "Desktop Entry") {
		t.Error("View should show the file type")
	}
}

func TestDiffPanel_HasChanges(t *testing.T) {
	dp := NewDiffPanel()

	// Nil result
	if dp.HasChanges() {
		t.Error("HasChanges should return false for nil result")
	}

	// Identical documents
	dp.DiffResult = autostart.DiffStrings("a\n", "a\n")
	if dp.HasChanges() {
		t.Error("HasChanges should return false for identical documents")
	}

	// Different documents
	dp.DiffResult = autostart.DiffStrings("a\n", "b\n")
	if !dp.HasChanges() {
		t.Error("HasChanges should return true for different documents")
	}
}

func TestDiffPanel_LineCount(t *testing.T) {
	dp := NewDiffPanel()

	// Nil result
	if dp.LineCount() != 0 {
		t.Error("LineCount should return 0 for nil result")
	}

	dp.DiffResult = autostart.DiffStrings("old line\n", "new line\n")
	if dp.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", dp.LineCount())
	}
}

func TestDiffPanel_FormatDiffLine(t *testing.T) {
	dp := NewDiffPanel()
	dp.DiffResult = &autostart.DiffResult{
		OldPath: "firefox.desktop",
		NewPath: "firefox.desktop",
	}

	// Test insert line
	insertLine := autostart.DiffLine{Type: autostart.DiffInsert, Content: "X-GNOME-Autostart-Delay=10"}
	result := dp.formatDiffLine(insertLine, 80)
	if result == "" {
		t.Error("formatDiffLine should return non-empty for insert")
	}

	// Test delete line
	deleteLine := autostart.DiffLine{Type: autostart.DiffDelete, Content: "Hidden=true"}
	result = dp.formatDiffLine(deleteLine, 80)
	if result == "" {
		t.Error("formatDiffLine should return non-empty for delete")
	}

	// Test equal line
	equalLine := autostart.DiffLine{Type: autostart.DiffEqual, Content: "Exec=firefox"}
	result = dp.formatDiffLine(equalLine, 80)
	if result == "" {
		t.Error("formatDiffLine should return non-empty for equal")
	}
}

func TestDiffPanel_FormatDiffLine_LongLine(t *testing.T) {
	dp := NewDiffPanel()
	dp.DiffResult = &autostart.DiffResult{
		OldPath: "firefox.desktop",
	}

	longLine := autostart.DiffLine{
		Type:    autostart.DiffEqual,
		Content: "Exec=" + strings.Repeat("a", 100),
	}

	// With small max width, should truncate
	result := dp.formatDiffLine(longLine, 50)
	if result == "" {
		t.Error("formatDiffLine should handle long lines")
	}
	if !strings.Contains(result, "...") {
		t.Error("Long lines should be truncated with ellipsis")
	}
}

func TestDiffPanel_FormatDiffLine_WithHighlight(t *testing.T) {
	dp := NewDiffPanel()
	dp.DiffResult = &autostart.DiffResult{
		OldPath: "firefox.desktop",
	}
	dp.enableHighlight = true

	equalLine := autostart.DiffLine{Type: autostart.DiffEqual, Content: "Name=Firefox"}
	result := dp.formatDiffLine(equalLine, 80)
	if result == "" {
		t.Error("formatDiffLine should handle highlighting")
	}
}

func TestDiffPanel_ViewWithScroll(t *testing.T) {
	dp := NewDiffPanel()
	dp.Width = 80
	dp.Height = 10

	var oldDoc, newDoc strings.Builder
	for i := 0; i < 30; i++ {
		oldDoc.WriteString("shared line\n")
	}
	newDoc.WriteString(oldDoc.String())
	newDoc.WriteString("tail line\n")

	dp.SetDiff(autostart.DiffStrings(oldDoc.String(), newDoc.String()), "Big App")
	dp.ScrollOffset = 25

	view := dp.View()
	if view == "" {
		t.Error("View should render with scroll offset applied")
	}
}
