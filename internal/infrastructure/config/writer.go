package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# patchnotes configuration

steam:
  # api_key: your-steam-web-api-key (or set STEAM_API_KEY env var)
  language: en
  base_url: http://api.steampowered.com
  icon_url: http://cdn.dota2.com/apps/dota2/images

storage:
  # sqlite or json (heroes.json / items.json in json_dir)
  catalog: sqlite
  sqlite:
    path: .patchnotes/patchnotes.db
  json_dir: .patchnotes

output:
  patch_dir: patches
  media_dir: media

http:
  timeout: 30s
  requests_per_second: 5

log:
  level: info
  development: false
`

// WriteDefault creates the .patchnotes directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a patchnotes config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
