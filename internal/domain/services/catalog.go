package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
)

// CatalogService loads the entity catalog, optionally refreshing the local
// snapshot from a remote source first.
type CatalogService struct {
	source ports.CatalogSource
	store  ports.CatalogStore
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService. source may be nil when no
// remote registry is configured.
func NewCatalogService(source ports.CatalogSource, store ports.CatalogStore, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Load returns the catalog. When refresh is set and a source is configured the
// snapshot is refreshed first; a failed refresh is logged and the existing
// snapshot is used instead. It returns entities.ErrCatalogUnavailable when
// there is nothing to fall back to.
func (s *CatalogService) Load(ctx context.Context, refresh bool) (*entities.Catalog, error) {
	if refresh && s.source != nil {
		catalog, err := s.Refresh(ctx)
		if err == nil {
			return catalog, nil
		}
		s.logger.Warn("catalog refresh failed, using local snapshot", zap.Error(err))
	}

	heroes, items, err := s.store.LoadCatalog(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrCatalogUnavailable, err)
	}
	if len(heroes) == 0 && len(items) == 0 {
		return nil, entities.ErrCatalogUnavailable
	}

	catalog := entities.NewCatalog(heroes, items)
	s.warnOverlap(catalog)
	return catalog, nil
}

// Refresh fetches heroes and items from the remote source and overwrites the
// local snapshot. Nothing is persisted unless both lists were fetched. A
// snapshot write failure is logged; the fetched catalog is still returned.
func (s *CatalogService) Refresh(ctx context.Context) (*entities.Catalog, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no catalog source configured", entities.ErrRemoteFetchFailed)
	}

	heroes, err := s.source.FetchHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching heroes: %w", err)
	}

	items, err := s.source.FetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}

	if len(heroes) == 0 || len(items) == 0 {
		return nil, fmt.Errorf("%w: empty catalog response (%d heroes, %d items)",
			entities.ErrRemoteFetchFailed, len(heroes), len(items))
	}

	catalog := entities.NewCatalog(heroes, items)
	if err := s.store.SaveCatalog(ctx, catalog.Heroes(), catalog.Items()); err != nil {
		s.logger.Error("saving catalog snapshot", zap.Error(err))
	}

	h, i := catalog.Len()
	s.logger.Info("catalog refreshed", zap.Int("heroes", h), zap.Int("items", i))
	s.warnOverlap(catalog)
	return catalog, nil
}

func (s *CatalogService) warnOverlap(catalog *entities.Catalog) {
	if keys := catalog.Overlap(); len(keys) > 0 {
		s.logger.Warn("catalog keys present as both hero and item, hero wins",
			zap.Int("count", len(keys)),
			zap.Stringer("first", keys[0]))
	}
}
