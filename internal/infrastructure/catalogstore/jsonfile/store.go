// Package jsonfile stores the catalog snapshot as heroes.json and items.json.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

const (
	heroesFile = "heroes.json"
	itemsFile  = "items.json"
)

// Store implements ports.CatalogStore on a directory of JSON files.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("json catalog directory is required")
	}
	return &Store{dir: dir}, nil
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveCatalog overwrites both snapshot files.
func (s *Store) SaveCatalog(_ context.Context, heroes, items []entities.CatalogRecord) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}
	if err := writeRecords(filepath.Join(s.dir, heroesFile), heroes); err != nil {
		return err
	}
	return writeRecords(filepath.Join(s.dir, itemsFile), items)
}

// LoadCatalog reads both snapshot files. A missing or empty snapshot yields
// entities.ErrCatalogUnavailable.
func (s *Store) LoadCatalog(_ context.Context) ([]entities.CatalogRecord, []entities.CatalogRecord, error) {
	heroes, err := readRecords(filepath.Join(s.dir, heroesFile))
	if err != nil {
		return nil, nil, err
	}
	items, err := readRecords(filepath.Join(s.dir, itemsFile))
	if err != nil {
		return nil, nil, err
	}
	if len(heroes) == 0 && len(items) == 0 {
		return nil, nil, fmt.Errorf("%w: snapshot in %s is empty", entities.ErrCatalogUnavailable, s.dir)
	}
	return heroes, items, nil
}

func writeRecords(path string, records []entities.CatalogRecord) error {
	if records == nil {
		records = []entities.CatalogRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	// A failed write leaves the previous snapshot in place.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readRecords(path string) ([]entities.CatalogRecord, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not found", entities.ErrCatalogUnavailable, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var records []entities.CatalogRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", entities.ErrCatalogUnavailable, filepath.Base(path), err)
	}

	// Older snapshots may lack the sanitised key.
	for i := range records {
		if records[i].Key == "" {
			records[i].Key = entities.Sanitize(records[i].DisplayName)
		}
	}
	return records, nil
}
