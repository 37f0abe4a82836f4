// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// CatalogSource fetches the current hero and item lists from a remote registry.
type CatalogSource interface {
	// FetchHeroes returns every playable hero.
	FetchHeroes(ctx context.Context) ([]entities.CatalogRecord, error)

	// FetchItems returns every item.
	FetchItems(ctx context.Context) ([]entities.CatalogRecord, error)
}

// CatalogStore persists the local catalog snapshot.
type CatalogStore interface {
	// SaveCatalog replaces the stored snapshot with the given records.
	SaveCatalog(ctx context.Context, heroes, items []entities.CatalogRecord) error

	// LoadCatalog returns the stored snapshot. It returns
	// entities.ErrCatalogUnavailable when no snapshot exists.
	LoadCatalog(ctx context.Context) (heroes, items []entities.CatalogRecord, err error)
}
