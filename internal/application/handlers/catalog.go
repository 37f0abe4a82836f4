package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/services"
)

// CatalogHandler handles catalog maintenance.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CatalogSummary describes a loaded catalog.
type CatalogSummary struct {
	Heroes  int
	Items   int
	Overlap []entities.CanonicalKey
}

// Refresh replaces the local snapshot with the remote catalog. Unlike
// generation, a failed refresh is reported instead of falling back.
func (h *CatalogHandler) Refresh(ctx context.Context) (*CatalogSummary, error) {
	catalog, err := h.service.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing catalog: %w", err)
	}
	return summarize(catalog), nil
}

// Show returns the records of category from the local snapshot, sorted by
// display name. An empty category returns heroes followed by items.
func (h *CatalogHandler) Show(ctx context.Context, category entities.Category) ([]entities.CatalogRecord, *CatalogSummary, error) {
	catalog, err := h.service.Load(ctx, false)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	var records []entities.CatalogRecord
	switch category {
	case entities.CategoryHero:
		records = sortedRecords(catalog.Heroes())
	case entities.CategoryItem:
		records = sortedRecords(catalog.Items())
	case entities.CategoryNone:
		records = append(sortedRecords(catalog.Heroes()), sortedRecords(catalog.Items())...)
	default:
		return nil, nil, fmt.Errorf("unknown category %q", category)
	}

	return records, summarize(catalog), nil
}

func summarize(catalog *entities.Catalog) *CatalogSummary {
	heroes, items := catalog.Len()
	return &CatalogSummary{
		Heroes:  heroes,
		Items:   items,
		Overlap: catalog.Overlap(),
	}
}

func sortedRecords(records []entities.CatalogRecord) []entities.CatalogRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DisplayName < records[j].DisplayName
	})
	return records
}
