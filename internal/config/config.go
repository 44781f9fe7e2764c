// ABOUTME: Huely configuration management.
// ABOUTME: JSON config file with data directory and locale override, plus the store factory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/huely/internal/i18n"
	"github.com/harperreed/huely/internal/storage"
)

// Config stores huely tool configuration.
type Config struct {
	// DataDir is the root directory for the badger database.
	// Supports ~ expansion. Defaults to ~/.local/share/huely.
	DataDir string `json:"data_dir,omitempty"`

	// Locale overrides the detected system locale (BCP-47, e.g. "de-DE").
	// Drives the first weekday, name collation, and display strings.
	Locale string `json:"locale,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLocale returns the configured locale, falling back to the environment.
func (c *Config) GetLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	return i18n.Detect()
}

// Localizer loads the string resources for the effective locale.
func (c *Config) Localizer() *i18n.Localizer {
	return i18n.Load(c.GetLocale())
}

// OpenStore opens the tracker store at the configured location.
func (c *Config) OpenStore() (storage.Store, error) {
	return storage.Open(c.GetDataDir(), c.Localizer().Tag())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "huely", "config.json")
}

// Load reads config from disk. A missing file yields zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
