package ports

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// IconProvider manages entity icons in the local media directory.
type IconProvider interface {
	// FetchMissing downloads icons for catalog records that have none locally.
	// It returns the number of icons downloaded. Individual download failures
	// are skipped.
	FetchMissing(ctx context.Context, heroes, items []entities.CatalogRecord) (int, error)

	// CopyIcons copies the icon for each key into dir, using a placeholder when
	// an icon is missing.
	CopyIcons(dir string, keys []entities.CanonicalKey) error

	// CopyBackdrop copies the page backdrop into dir. It reports false when
	// no backdrop is configured.
	CopyBackdrop(dir string) (bool, error)
}
