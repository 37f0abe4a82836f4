package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
	"github.com/ersonp/patchnotes/internal/domain/services"
	"github.com/ersonp/patchnotes/internal/infrastructure/parsers"
)

// ParseHandler parses patch posts saved as local files.
type ParseHandler struct {
	catalogs  *services.CatalogService
	patches   *services.PatchService
	extractor ports.SectionExtractor
}

// NewParseHandler creates a new parse handler. extractor is only needed for
// saved HTML pages.
func NewParseHandler(catalogs *services.CatalogService, patches *services.PatchService, extractor ports.SectionExtractor) *ParseHandler {
	return &ParseHandler{
		catalogs:  catalogs,
		patches:   patches,
		extractor: extractor,
	}
}

// ParseOptions controls parse behavior.
type ParseOptions struct {
	Format         string // "json", "text", "html" or "auto"
	URL            string // Source URL; selects the site layout for HTML pages
	RefreshCatalog bool
}

// Handle parses the post in filePath into a patch record.
func (h *ParseHandler) Handle(ctx context.Context, filePath string, opts ParseOptions) (*entities.PatchRecord, error) {
	catalog, err := h.catalogs.Load(ctx, opts.RefreshCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if opts.Format == "html" || ((opts.Format == "" || opts.Format == "auto") && parsers.IsHTML(filePath)) {
		return h.parseHTML(filePath, opts.URL, catalog)
	}

	// Get parser
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	// Open file
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	post, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	postURL := post.URL
	if opts.URL != "" {
		postURL = opts.URL
	}

	return h.patches.FromText(post.Contents, post.Date, postURL, catalog)
}

func (h *ParseHandler) parseHTML(filePath, rawURL string, catalog *entities.Catalog) (*entities.PatchRecord, error) {
	if h.extractor == nil {
		return nil, errors.New("html parsing is not configured")
	}
	if rawURL == "" {
		return nil, errors.New("a source url is required to parse an html page")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing post url: %w", err)
	}

	document, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	sections, err := h.extractor.Extract(u, document)
	if err != nil {
		return nil, fmt.Errorf("extracting post sections: %w", err)
	}

	return h.patches.FromText(sections.RawContents, sections.RawDate, rawURL, catalog)
}
