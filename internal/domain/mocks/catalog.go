// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// CatalogSource is a mock implementation of ports.CatalogSource.
type CatalogSource struct {
	Heroes    []entities.CatalogRecord
	Items     []entities.CatalogRecord
	HeroesErr error
	ItemsErr  error
	Calls     int
}

// FetchHeroes returns the configured heroes or error.
func (m *CatalogSource) FetchHeroes(_ context.Context) ([]entities.CatalogRecord, error) {
	m.Calls++
	if m.HeroesErr != nil {
		return nil, m.HeroesErr
	}
	return m.Heroes, nil
}

// FetchItems returns the configured items or error.
func (m *CatalogSource) FetchItems(_ context.Context) ([]entities.CatalogRecord, error) {
	m.Calls++
	if m.ItemsErr != nil {
		return nil, m.ItemsErr
	}
	return m.Items, nil
}

// CatalogStore is an in-memory implementation of ports.CatalogStore.
type CatalogStore struct {
	Heroes  []entities.CatalogRecord
	Items   []entities.CatalogRecord
	Saved   bool
	SaveErr error
	LoadErr error
}

// SaveCatalog replaces the stored records.
func (m *CatalogStore) SaveCatalog(_ context.Context, heroes, items []entities.CatalogRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Heroes = heroes
	m.Items = items
	m.Saved = true
	return nil
}

// LoadCatalog returns the stored records, or ErrCatalogUnavailable when empty.
func (m *CatalogStore) LoadCatalog(_ context.Context) ([]entities.CatalogRecord, []entities.CatalogRecord, error) {
	if m.LoadErr != nil {
		return nil, nil, m.LoadErr
	}
	if m.Heroes == nil && m.Items == nil {
		return nil, nil, entities.ErrCatalogUnavailable
	}
	return m.Heroes, m.Items, nil
}
