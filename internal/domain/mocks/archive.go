package mocks

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// PatchArchive is an in-memory implementation of ports.PatchArchive.
type PatchArchive struct {
	Patches []entities.ArchivedPatch
	Err     error
}

// SavePatch records the patch.
func (m *PatchArchive) SavePatch(_ context.Context, patch *entities.ArchivedPatch) error {
	if m.Err != nil {
		return m.Err
	}
	m.Patches = append(m.Patches, *patch)
	return nil
}

// ListPatches returns the most recently saved patches first.
func (m *PatchArchive) ListPatches(_ context.Context, limit int) ([]entities.ArchivedPatch, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.ArchivedPatch
	for i := len(m.Patches) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.Patches[i])
	}
	return out, nil
}

// FindPatchesByRelease returns saved patches for releaseID.
func (m *PatchArchive) FindPatchesByRelease(_ context.Context, releaseID string) ([]entities.ArchivedPatch, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.ArchivedPatch
	for _, p := range m.Patches {
		if p.ReleaseID == releaseID {
			out = append(out, p)
		}
	}
	return out, nil
}
