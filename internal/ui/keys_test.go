package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	// Test all key bindings are defined
	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Home", km.Home},
		{"End", km.End},
		{"Tab", km.Tab},
		{"Enter", km.Enter},
		{"Space", km.Space},
		{"Escape", km.Escape},
		{"Search", km.Search},
		{"Filter", km.Filter},
		{"Add", km.Add},
		{"Delay", km.Delay},
		{"Diff", km.Diff},
		{"RunNow", km.RunNow},
		{"Export", km.Export},
		{"Import", km.Import},
		{"OpenFolder", km.OpenFolder},
		{"Refresh", km.Refresh},
		{"History", km.History},
		{"Restore", km.Restore},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		if len(b.binding.Keys()) == 0 {
			t.Errorf("%s binding should have keys", b.name)
		}
		if b.binding.Help().Key == "" {
			t.Errorf("%s binding should have help key", b.name)
		}
		if b.binding.Help().Desc == "" {
			t.Errorf("%s binding should have help description", b.name)
		}
	}
}

func TestKeyMap_Up(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Up.Keys()

	if len(keys) != 2 {
		t.Errorf("Up should have 2 keys, got %d", len(keys))
	}

	// Check for "up" and "k"
	hasUp := false
	hasK := false
	for _, k := range keys {
		if k == "up" {
			hasUp = true
		}
		if k == "k" {
			hasK = true
		}
	}

	if !hasUp {
		t.Error("Up should include 'up' key")
	}
	if !hasK {
		t.Error("Up should include 'k' key")
	}
}

func TestKeyMap_Down(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Down.Keys()

	if len(keys) != 2 {
		t.Errorf("Down should have 2 keys, got %d", len(keys))
	}
}

func TestKeyMap_Quit(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Quit.Keys()

	// Should have "q" and "ctrl+c"
	if len(keys) != 2 {
		t.Errorf("Quit should have 2 keys, got %d", len(keys))
	}
}

func TestKeyMap_EntryOperationKeys(t *testing.T) {
	km := DefaultKeyMap()

	// Space toggles startup on/off
	if km.Space.Keys()[0] != " " {
		t.Errorf("Space key should be ' ', got '%s'", km.Space.Keys()[0])
	}

	// Add should be 'a'
	if km.Add.Keys()[0] != "a" {
		t.Errorf("Add key should be 'a', got '%s'", km.Add.Keys()[0])
	}

	// Delay should be 'd'
	if km.Delay.Keys()[0] != "d" {
		t.Errorf("Delay key should be 'd', got '%s'", km.Delay.Keys()[0])
	}

	// Diff should be 'v'
	if km.Diff.Keys()[0] != "v" {
		t.Errorf("Diff key should be 'v', got '%s'", km.Diff.Keys()[0])
	}

	// RunNow should be 'n'
	if km.RunNow.Keys()[0] != "n" {
		t.Errorf("RunNow key should be 'n', got '%s'", km.RunNow.Keys()[0])
	}
}

func TestKeyMap_TransferKeys(t *testing.T) {
	km := DefaultKeyMap()

	// Export should be 'x'
	if km.Export.Keys()[0] != "x" {
		t.Errorf("Export key should be 'x', got '%s'", km.Export.Keys()[0])
	}

	// Import should be 'i'
	if km.Import.Keys()[0] != "i" {
		t.Errorf("Import key should be 'i', got '%s'", km.Import.Keys()[0])
	}

	// OpenFolder should be 'o'
	if km.OpenFolder.Keys()[0] != "o" {
		t.Errorf("OpenFolder key should be 'o', got '%s'", km.OpenFolder.Keys()[0])
	}
}

func TestKeyMap_HistoryKeys(t *testing.T) {
	km := DefaultKeyMap()

	if km.History.Keys()[0] != "g" {
		t.Errorf("History key should be 'g', got '%s'", km.History.Keys()[0])
	}

	if km.Restore.Keys()[0] != "R" {
		t.Errorf("Restore key should be 'R', got '%s'", km.Restore.Keys()[0])
	}
}

func TestKeyMap_SearchAndFilter(t *testing.T) {
	km := DefaultKeyMap()

	if km.Search.Keys()[0] != "/" {
		t.Errorf("Search key should be '/', got '%s'", km.Search.Keys()[0])
	}

	if km.Filter.Keys()[0] != "f" {
		t.Errorf("Filter key should be 'f', got '%s'", km.Filter.Keys()[0])
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ShortHelp()

	if len(help) == 0 {
		t.Error("ShortHelp should not be empty")
	}

	// Should include common actions
	expectedCount := 7 // Space, Search, Filter, Add, Delay, Help, Quit
	if len(help) != expectedCount {
		t.Errorf("ShortHelp should have %d bindings, got %d", expectedCount, len(help))
	}
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.FullHelp()

	if len(help) == 0 {
		t.Error("FullHelp should not be empty")
	}

	// Should have multiple groups
	if len(help) < 4 {
		t.Errorf("FullHelp should have at least 4 groups, got %d", len(help))
	}

	// Each group should have bindings
	for i, group := range help {
		if len(group) == 0 {
			t.Errorf("FullHelp group %d should not be empty", i)
		}
	}
}

func TestKeyMap_Navigation(t *testing.T) {
	km := DefaultKeyMap()

	// Test navigation keys have vim-style alternatives
	navKeys := []struct {
		name    string
		binding key.Binding
		vimKey  string
	}{
		{"Up", km.Up, "k"},
		{"Down", km.Down, "j"},
	}

	for _, nk := range navKeys {
		keys := nk.binding.Keys()
		hasVimKey := false
		for _, k := range keys {
			if k == nk.vimKey {
				hasVimKey = true
				break
			}
		}
		if !hasVimKey {
			t.Errorf("%s should include vim key '%s'", nk.name, nk.vimKey)
		}
	}
}
