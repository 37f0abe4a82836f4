package mocks

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// IconProvider is a mock implementation of ports.IconProvider.
type IconProvider struct {
	Fetched    int
	FetchCalls int
	Copied     map[string][]entities.CanonicalKey
	Backdrops  []string
	Err        error
}

// FetchMissing records the call and returns the configured count.
func (m *IconProvider) FetchMissing(_ context.Context, _, _ []entities.CatalogRecord) (int, error) {
	m.FetchCalls++
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Fetched, nil
}

// CopyIcons records the keys copied into dir.
func (m *IconProvider) CopyIcons(dir string, keys []entities.CanonicalKey) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Copied == nil {
		m.Copied = make(map[string][]entities.CanonicalKey)
	}
	m.Copied[dir] = append(m.Copied[dir], keys...)
	return nil
}

// CopyBackdrop records dir and reports a copied backdrop.
func (m *IconProvider) CopyBackdrop(dir string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.Backdrops = append(m.Backdrops, dir)
	return true, nil
}
