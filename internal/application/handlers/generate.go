package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
	"github.com/ersonp/patchnotes/internal/domain/services"
	"github.com/ersonp/patchnotes/internal/infrastructure/render"
)

// File names inside a patch directory.
const (
	pageFile  = "index.html"
	imagesDir = "img"
)

// GenerateHandler builds patch pages from post URLs.
type GenerateHandler struct {
	catalogs *services.CatalogService
	patches  *services.PatchService
	output   *OutputWriter
	icons    ports.IconProvider
	logger   *zap.Logger
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(
	catalogs *services.CatalogService,
	patches *services.PatchService,
	output *OutputWriter,
	icons ports.IconProvider,
	logger *zap.Logger,
) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{
		catalogs: catalogs,
		patches:  patches,
		output:   output,
		icons:    icons,
		logger:   logger,
	}
}

// GenerateOptions controls generation behavior.
type GenerateOptions struct {
	RefreshCatalog bool // Refresh the catalog from the remote source first
	FetchIcons     bool // Download missing icons before writing pages
	JSON           bool // Also write <ID>.json next to the page
}

// GenerateResult describes the outcome for one post URL.
type GenerateResult struct {
	URL       string
	ReleaseID string
	OutputDir string
	Heroes    int
	Items     int
	General   int
	Err       error
}

// Handle generates a page for every URL. A failing URL is recorded in its
// result and the batch continues. The returned error is set only when
// nothing can be generated at all, such as an unavailable catalog.
func (h *GenerateHandler) Handle(ctx context.Context, urls []string, opts GenerateOptions) ([]GenerateResult, error) {
	catalog, err := h.catalogs.Load(ctx, opts.RefreshCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if opts.FetchIcons && h.icons != nil {
		fetched, err := h.icons.FetchMissing(ctx, catalog.Heroes(), catalog.Items())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			h.logger.Warn("icon download failed", zap.Error(err))
		} else {
			h.logger.Info("downloaded missing icons", zap.Int("count", fetched))
		}
	}

	results := make([]GenerateResult, 0, len(urls))
	for _, postURL := range urls {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := GenerateResult{URL: postURL}
		record, err := h.patches.FromURL(ctx, postURL, catalog)
		if err == nil {
			var written *WriteResult
			written, err = h.output.Write(ctx, record, WriteOptions{JSON: opts.JSON})
			if err == nil {
				result.OutputDir = written.Dir
			}
			result.ReleaseID = record.ReleaseID()
			result.Heroes = len(record.HeroesChanged())
			result.Items = len(record.ItemsChanged())
			result.General = len(record.GeneralChanges())
		}

		if err != nil {
			result.Err = err
			h.logger.Error("patch generation failed", zap.String("url", postURL), zap.Error(err))
		}
		results = append(results, result)
	}

	return results, nil
}

// OutputWriter writes a patch record to its own directory and archives it.
type OutputWriter struct {
	patchDir string
	renderer ports.PageRenderer
	exporter ports.Exporter
	icons    ports.IconProvider
	archive  ports.PatchArchive
	logger   *zap.Logger
}

// NewOutputWriter creates an output writer rooted at patchDir. icons and
// archive may be nil.
func NewOutputWriter(
	patchDir string,
	renderer ports.PageRenderer,
	exporter ports.Exporter,
	icons ports.IconProvider,
	archive ports.PatchArchive,
	logger *zap.Logger,
) *OutputWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutputWriter{
		patchDir: patchDir,
		renderer: renderer,
		exporter: exporter,
		icons:    icons,
		archive:  archive,
		logger:   logger,
	}
}

// WriteOptions controls which files are written.
type WriteOptions struct {
	JSON bool
}

// WriteResult lists the files written for a patch.
type WriteResult struct {
	Dir      string
	Page     string
	JSON     string
	Archived *entities.ArchivedPatch
}

// Write renders record into a fresh directory named after its release ID.
func (w *OutputWriter) Write(ctx context.Context, record *entities.PatchRecord, opts WriteOptions) (*WriteResult, error) {
	dir, err := render.ReservePatchDir(w.patchDir, record.ReleaseID())
	if err != nil {
		return nil, err
	}
	result := &WriteResult{Dir: dir, Page: filepath.Join(dir, pageFile)}

	if err := writeFile(result.Page, func(f io.Writer) error { return w.renderer.RenderPage(f, record) }); err != nil {
		return nil, fmt.Errorf("writing page: %w", err)
	}
	if err := writeFile(filepath.Join(dir, render.StylesheetName), render.WriteStylesheet); err != nil {
		return nil, fmt.Errorf("writing stylesheet: %w", err)
	}

	if w.icons != nil {
		imgDir := filepath.Join(dir, imagesDir)
		if _, err := w.icons.CopyBackdrop(imgDir); err != nil {
			return nil, err
		}
		if err := w.icons.CopyIcons(imgDir, changedKeys(record)); err != nil {
			return nil, err
		}
	}

	if opts.JSON && w.exporter != nil {
		result.JSON = filepath.Join(dir, record.ReleaseID()+".json")
		if err := writeFile(result.JSON, func(f io.Writer) error { return w.exporter.Export(f, record) }); err != nil {
			return nil, fmt.Errorf("writing json: %w", err)
		}
	}

	if w.archive != nil {
		archived := &entities.ArchivedPatch{
			ReleaseID:   record.ReleaseID(),
			ReleaseDate: record.ReleaseDate(),
			URL:         record.URL(),
			OutputDir:   dir,
			Heroes:      len(record.HeroesChanged()),
			Items:       len(record.ItemsChanged()),
			General:     len(record.GeneralChanges()),
		}
		if err := w.archive.SavePatch(ctx, archived); err != nil {
			w.logger.Warn("archiving patch failed", zap.String("release", record.ReleaseID()), zap.Error(err))
		} else {
			result.Archived = archived
		}
	}

	w.logger.Info("patch written", zap.String("release", record.ReleaseID()), zap.String("dir", dir))
	return result, nil
}

func changedKeys(record *entities.PatchRecord) []entities.CanonicalKey {
	var keys []entities.CanonicalKey
	for _, e := range record.ItemEntries() {
		keys = append(keys, e.Key)
	}
	for _, e := range record.HeroEntries() {
		keys = append(keys, e.Key)
	}
	return keys
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
