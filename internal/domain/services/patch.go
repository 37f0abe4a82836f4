package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
)

// PatchService turns patch posts into patch records.
type PatchService struct {
	fetcher   ports.DocumentFetcher
	extractor ports.SectionExtractor
	logger    *zap.Logger
	now       func() time.Time
}

// NewPatchService creates a new PatchService.
func NewPatchService(fetcher ports.DocumentFetcher, extractor ports.SectionExtractor, logger *zap.Logger) *PatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatchService{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// FromURL fetches the post at postURL and parses it against catalog.
func (s *PatchService) FromURL(ctx context.Context, postURL string, catalog *entities.Catalog) (*entities.PatchRecord, error) {
	u, err := url.Parse(postURL)
	if err != nil {
		return nil, fmt.Errorf("parsing post url: %w", err)
	}

	document, err := s.fetcher.Fetch(ctx, postURL)
	if err != nil {
		return nil, fmt.Errorf("fetching post: %w", err)
	}

	sections, err := s.extractor.Extract(u, document)
	if err != nil {
		return nil, fmt.Errorf("extracting post sections: %w", err)
	}

	return s.FromText(sections.RawContents, sections.RawDate, postURL, catalog)
}

// FromText parses already-extracted post text. contents holds the title line,
// the '=' separator and the changelog; rawDate is parsed on a best-effort basis.
func (s *PatchService) FromText(contents, rawDate, postURL string, catalog *entities.Catalog) (*entities.PatchRecord, error) {
	if catalog == nil {
		return nil, entities.ErrCatalogUnavailable
	}

	releaseID, changelog, err := SplitDocument(contents)
	if err != nil {
		return nil, err
	}

	meta := entities.PatchMeta{
		ReleaseID:   releaseID,
		ReleaseDate: ExtractDate(rawDate, s.now),
		URL:         postURL,
	}

	parsed := ParseChangelog(changelog, catalog)
	record := BuildRecord(meta, parsed)

	s.logger.Debug("parsed patch",
		zap.String("release", releaseID),
		zap.Int("heroes", len(record.HeroesChanged())),
		zap.Int("items", len(record.ItemsChanged())),
		zap.Int("general", len(record.GeneralChanges())))

	return record, nil
}
