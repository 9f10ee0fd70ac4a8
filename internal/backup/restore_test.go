package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRestore_RevertsToSnapshot(t *testing.T) {
	h, autostartDir := newTestHistory(t)
	writeEntry(t, autostartDir, "foo.desktop", "[Desktop Entry]\nName=foo\nExec=/bin/foo\n")

	first, err := h.Snapshot("first")
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	writeEntry(t, autostartDir, "foo.desktop", "[Desktop Entry]\nName=foo\nExec=sh -c 'sleep 5 && /bin/foo'\n")
	writeEntry(t, autostartDir, "bar.desktop", "[Desktop Entry]\nName=bar\nExec=bar\n")
	if _, err := h.Snapshot("second"); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	restored, err := h.Restore(first)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored != 1 {
		t.Errorf("Expected 1 entry restored, got %d", restored)
	}

	data, err := os.ReadFile(filepath.Join(autostartDir, "foo.desktop"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "[Desktop Entry]\nName=foo\nExec=/bin/foo\n" {
		t.Errorf("Unexpected content after restore:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(autostartDir, "bar.desktop")); !os.IsNotExist(err) {
		t.Error("Expected bar.desktop removed by restore")
	}
}

func TestRestore_UnknownRevision(t *testing.T) {
	h, _ := newTestHistory(t)

	if _, err := h.Restore("abc1234"); err == nil {
		t.Error("Expected error for unknown revision")
	}
}

func TestEntryDate(t *testing.T) {
	when := time.Date(2025, 3, 14, 9, 26, 0, 0, time.Local)
	entry := Entry{When: when}

	if got := entry.Date(); got != "2025-03-14 09:26" {
		t.Errorf("Unexpected date: %s", got)
	}
}

func TestEntryAge(t *testing.T) {
	tests := []struct {
		name     string
		when     time.Time
		expected string
	}{
		{"just now", time.Now().Add(-30 * time.Second), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days", time.Now().Add(-49 * time.Hour), "2d ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := Entry{When: tc.when}
			if got := entry.Age(); got != tc.expected {
				t.Errorf("Age() = %s, expected %s", got, tc.expected)
			}
		})
	}
}
