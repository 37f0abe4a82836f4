package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/patchnotes/internal/application/handlers"
	"github.com/ersonp/patchnotes/internal/domain/ports"
	"github.com/ersonp/patchnotes/internal/domain/services"
	"github.com/ersonp/patchnotes/internal/infrastructure/assets"
	"github.com/ersonp/patchnotes/internal/infrastructure/catalogstore/jsonfile"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
	"github.com/ersonp/patchnotes/internal/infrastructure/httpclient"
	"github.com/ersonp/patchnotes/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/patchnotes/internal/infrastructure/render"
	"github.com/ersonp/patchnotes/internal/infrastructure/steam"
	"github.com/ersonp/patchnotes/internal/infrastructure/web"
	"github.com/ersonp/patchnotes/internal/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config          *config.Config
	Logger          *zap.Logger
	GenerateHandler *handlers.GenerateHandler
	ParseHandler    *handlers.ParseHandler
	CatalogHandler  *handlers.CatalogHandler
	HistoryHandler  *handlers.HistoryHandler
	Output          *handlers.OutputWriter
}

// workspaceDir returns the --dir flag or the current directory.
func workspaceDir() (string, error) {
	if globalDir != "" {
		return filepath.Abs(globalDir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	base, err := workspaceDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if globalVerbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	// Initialize RelationalDB (SQLite)
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLite.Path), 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	relationalDB, err := sqlite.NewRepository(cfg.Storage.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer relationalDB.Close()

	// Ensure schema exists
	if err := relationalDB.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	var store ports.CatalogStore = relationalDB
	if cfg.Storage.Catalog == config.StoreJSON {
		jsonStore, err := jsonfile.NewStore(cfg.Storage.JSONDir)
		if err != nil {
			return fmt.Errorf("creating json catalog store: %w", err)
		}
		store = jsonStore
	}

	httpClient := httpclient.New(cfg.HTTP)

	var source ports.CatalogSource
	if cfg.Steam.APIKey != "" {
		steamClient, err := steam.NewClient(cfg.Steam, httpClient)
		if err != nil {
			return fmt.Errorf("creating steam client: %w", err)
		}
		source = steamClient
	} else {
		logger.Debug("no steam api key configured, catalog refresh disabled")
	}

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return err
	}

	extractor := web.NewExtractor()
	icons := assets.NewIcons(httpClient, cfg.Steam.IconURL, cfg.Output.MediaDir, logger)

	catalogService := services.NewCatalogService(source, store, logger)
	patchService := services.NewPatchService(web.NewFetcher(httpClient), extractor, logger)
	output := handlers.NewOutputWriter(cfg.Output.PatchDir, renderer, render.JSONExporter{}, icons, relationalDB, logger)

	deps := &Deps{
		Config:          cfg,
		Logger:          logger,
		GenerateHandler: handlers.NewGenerateHandler(catalogService, patchService, output, icons, logger),
		ParseHandler:    handlers.NewParseHandler(catalogService, patchService, extractor),
		CatalogHandler:  handlers.NewCatalogHandler(catalogService),
		HistoryHandler:  handlers.NewHistoryHandler(relationalDB),
		Output:          output,
	}

	return fn(deps)
}
