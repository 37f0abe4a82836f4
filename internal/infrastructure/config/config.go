// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for patchnotes configuration.
	DefaultConfigDir = ".patchnotes"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Storage backends for the catalog snapshot.
const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Steam   SteamConfig   `yaml:"steam,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	HTTP    HTTPConfig    `yaml:"http,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// SteamConfig holds configuration for the Steam Web API catalog source.
type SteamConfig struct {
	APIKey   string `yaml:"api_key,omitempty"`
	Language string `yaml:"language,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	IconURL  string `yaml:"icon_url,omitempty"`
}

// StorageConfig selects where the catalog snapshot and patch archive live.
type StorageConfig struct {
	// Catalog is the snapshot backend: "sqlite" or "json".
	Catalog string       `yaml:"catalog,omitempty"`
	SQLite  SQLiteConfig `yaml:"sqlite,omitempty"`
	// JSONDir holds heroes.json and items.json for the json backend.
	JSONDir string `yaml:"json_dir,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database. Relative paths are
	// resolved against the project directory.
	Path string `yaml:"path,omitempty"`
}

// OutputConfig holds locations for generated pages and media.
type OutputConfig struct {
	PatchDir string `yaml:"patch_dir,omitempty"`
	MediaDir string `yaml:"media_dir,omitempty"`
}

// HTTPConfig tunes outgoing requests.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout,omitempty"`
	RequestsPerSecond float64       `yaml:"requests_per_second,omitempty"`
	UserAgent         string        `yaml:"user_agent,omitempty"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level       string `yaml:"level,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Steam: SteamConfig{
			Language: "en",
			BaseURL:  "http://api.steampowered.com",
			IconURL:  "http://cdn.dota2.com/apps/dota2/images",
		},
		Storage: StorageConfig{
			Catalog: StoreSQLite,
			SQLite:  SQLiteConfig{Path: filepath.Join(DefaultConfigDir, "patchnotes.db")},
			JSONDir: DefaultConfigDir,
		},
		Output: OutputConfig{
			PatchDir: "patches",
			MediaDir: "media",
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
			UserAgent:         "patchnotes/0.1 (+https://github.com/ersonp/patchnotes)",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .patchnotes directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(basePath)
	return cfg, nil
}

// Validate checks for values that cannot work.
func (c *Config) Validate() error {
	switch c.Storage.Catalog {
	case StoreSQLite, StoreJSON:
	default:
		return fmt.Errorf("invalid storage.catalog %q (want %q or %q)", c.Storage.Catalog, StoreSQLite, StoreJSON)
	}
	if c.HTTP.RequestsPerSecond <= 0 {
		return fmt.Errorf("http.requests_per_second must be positive, got %v", c.HTTP.RequestsPerSecond)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("STEAM_API_KEY"); key != "" {
		if c.Steam.APIKey == "" {
			c.Steam.APIKey = key
		}
	}
	if level := os.Getenv("PATCHNOTES_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

func (c *Config) resolvePaths(basePath string) {
	c.Storage.SQLite.Path = resolve(basePath, c.Storage.SQLite.Path)
	c.Storage.JSONDir = resolve(basePath, c.Storage.JSONDir)
	c.Output.PatchDir = resolve(basePath, c.Output.PatchDir)
	c.Output.MediaDir = resolve(basePath, c.Output.MediaDir)
}

func resolve(basePath, p string) string {
	if p == "" || p == ":memory:" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .patchnotes config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
