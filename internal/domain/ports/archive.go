package ports

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// PatchArchive records generated patch pages.
type PatchArchive interface {
	// SavePatch records a generated patch.
	SavePatch(ctx context.Context, patch *entities.ArchivedPatch) error

	// ListPatches lists archived patches, newest first.
	ListPatches(ctx context.Context, limit int) ([]entities.ArchivedPatch, error)

	// FindPatchesByRelease lists archived patches for a release ID.
	FindPatchesByRelease(ctx context.Context, releaseID string) ([]entities.ArchivedPatch, error)
}

