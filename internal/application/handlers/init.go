// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"
	"os"

	"github.com/ersonp/patchnotes/internal/infrastructure/config"
)

// InitHandler handles workspace initialization.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	PatchDir   string
	MediaDir   string
	Config     *config.Config
}

// Handle writes the default config and creates the output directories.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("patchnotes already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	for _, dir := range []string{cfg.Output.PatchDir, cfg.Output.MediaDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		PatchDir:   cfg.Output.PatchDir,
		MediaDir:   cfg.Output.MediaDir,
		Config:     cfg,
	}, nil
}
