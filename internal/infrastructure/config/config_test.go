package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "en", cfg.Steam.Language)
	assert.Equal(t, "http://api.steampowered.com", cfg.Steam.BaseURL)
	assert.Equal(t, StoreSQLite, cfg.Storage.Catalog)
	assert.Equal(t, "patches", cfg.Output.PatchDir)
	assert.Equal(t, "media", cfg.Output.MediaDir)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestConfigDir(t *testing.T) {
	result := ConfigDir("/home/user/project")
	assert.Equal(t, "/home/user/project/.patchnotes", result)
}

func TestConfigFilePath(t *testing.T) {
	result := ConfigFilePath("/home/user/project")
	assert.Equal(t, "/home/user/project/.patchnotes/config.yaml", result)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "")
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "patches"), cfg.Output.PatchDir)
	assert.Equal(t, filepath.Join(dir, ".patchnotes", "patchnotes.db"), cfg.Storage.SQLite.Path)
	assert.Empty(t, cfg.Steam.APIKey)
}

func TestLoad_DefaultYAMLRoundTrip(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "")
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Storage.Catalog)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 5.0, cfg.HTTP.RequestsPerSecond)
	assert.Equal(t, filepath.Join(dir, "media"), cfg.Output.MediaDir)
}

func TestLoad_FileOverridesAndEnv(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "env-key")
	t.Setenv("PATCHNOTES_LOG_LEVEL", "debug")
	dir := t.TempDir()
	content := `
storage:
  catalog: json
  json_dir: /var/lib/patchnotes
output:
  patch_dir: out
http:
  timeout: 5s
  requests_per_second: 2
`
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, StoreJSON, cfg.Storage.Catalog)
	assert.Equal(t, "/var/lib/patchnotes", cfg.Storage.JSONDir)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Output.PatchDir)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "env-key", cfg.Steam.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "invalid yaml",
			content: "storage: [",
			errMsg:  "parsing config file",
		},
		{
			name:    "unknown catalog backend",
			content: "storage:\n  catalog: postgres\n",
			errMsg:  "invalid storage.catalog",
		},
		{
			name:    "zero request rate",
			content: "http:\n  requests_per_second: -1\n",
			errMsg:  "requests_per_second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
			require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(tt.content), 0644))

			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	err := WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
