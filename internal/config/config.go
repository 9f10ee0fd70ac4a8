package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	BackupEnabled   bool   `json:"backup_enabled"`   // Snapshot autostart dir before mutating it
	HistoryDir      string `json:"history_dir"`      // Path to the snapshot history repository
	ExportPath      string `json:"export_path"`      // Default target for JSON exports
	DefinitionsPath string `json:"definitions_path"` // Path to icon rules YAML (optional)
	Debug           bool   `json:"debug"`            // Verbose stderr logging
	FirstRun        bool   `json:"-"`                // Is this the first run?
}

// configFileName is the name of the config file
const configFileName = "config.json"

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		BackupEnabled:   true,
		HistoryDir:      filepath.Join(homeDir, ".local", "share", "startmgr", "history"),
		ExportPath:      filepath.Join(homeDir, "startup-apps.json"),
		DefinitionsPath: "", // Empty = use built-in definitions
		Debug:           false,
		FirstRun:        true,
	}
}

// ConfigDir returns the directory containing startmgr config files
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "startmgr")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// Load loads the configuration from file
func Load() (*Config, error) {
	configPath := ConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// First run - return default config
			cfg := Default()
			cfg.FirstRun = true
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.FirstRun = false
	return cfg, nil
}

// Save saves the configuration to file
func (c *Config) Save() error {
	configPath := ConfigPath()

	// Create config directory
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDirectories creates necessary directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.HistoryDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// HistoryInitialized checks if the history dir is already a git repository
func (c *Config) HistoryInitialized() bool {
	gitPath := filepath.Join(c.HistoryDir, ".git")
	_, err := os.Stat(gitPath)
	return err == nil
}
