package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/ports"
)

// HistoryHandler lists previously generated patches.
type HistoryHandler struct {
	archive ports.PatchArchive
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(archive ports.PatchArchive) *HistoryHandler {
	return &HistoryHandler{archive: archive}
}

// Handle lists archived patches, newest first. A non-empty releaseID restricts
// the list to that release.
func (h *HistoryHandler) Handle(ctx context.Context, releaseID string, limit int) ([]entities.ArchivedPatch, error) {
	var (
		patches []entities.ArchivedPatch
		err     error
	)
	if releaseID != "" {
		patches, err = h.archive.FindPatchesByRelease(ctx, strings.ToUpper(strings.TrimSpace(releaseID)))
		if err == nil && limit > 0 && len(patches) > limit {
			patches = patches[:limit]
		}
	} else {
		patches, err = h.archive.ListPatches(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing patches: %w", err)
	}
	return patches, nil
}
