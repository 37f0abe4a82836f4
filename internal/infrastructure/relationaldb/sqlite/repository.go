// Package sqlite provides the SQLite catalog snapshot and patch archive.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.CatalogStore and ports.PatchArchive using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Catalog snapshot (heroes and items, replaced on every refresh)
	CREATE TABLE IF NOT EXISTS catalog (
		category TEXT NOT NULL,
		sanitised_name TEXT NOT NULL,
		name TEXT NOT NULL,
		localized_name TEXT NOT NULL,
		remote_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (category, sanitised_name)
	);
	CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog(category, position);

	-- Generated patch pages
	CREATE TABLE IF NOT EXISTS patches (
		id TEXT PRIMARY KEY,
		release_id TEXT NOT NULL,
		release_date TIMESTAMP NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		output_dir TEXT NOT NULL DEFAULT '',
		heroes INTEGER NOT NULL DEFAULT 0,
		items INTEGER NOT NULL DEFAULT 0,
		general INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_patches_release ON patches(release_id);
	CREATE INDEX IF NOT EXISTS idx_patches_created ON patches(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveCatalog replaces the stored snapshot in a single transaction.
func (r *Repository) SaveCatalog(ctx context.Context, heroes, items []entities.CatalogRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog`); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog (category, sanitised_name, name, localized_name, remote_id, position)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(category, sanitised_name) DO UPDATE SET
			name = excluded.name,
			localized_name = excluded.localized_name,
			remote_id = excluded.remote_id
	`)
	if err != nil {
		return fmt.Errorf("preparing catalog insert: %w", err)
	}
	defer stmt.Close()

	insert := func(category entities.Category, records []entities.CatalogRecord) error {
		for i, rec := range records {
			key := rec.Key
			if key == "" {
				key = entities.Sanitize(rec.DisplayName)
			}
			if _, err := stmt.ExecContext(ctx, string(category), string(key), rec.Name, rec.DisplayName, rec.ID, i); err != nil {
				return fmt.Errorf("saving %s %q: %w", category, rec.DisplayName, err)
			}
		}
		return nil
	}

	if err := insert(entities.CategoryHero, heroes); err != nil {
		return err
	}
	if err := insert(entities.CategoryItem, items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// LoadCatalog returns the stored snapshot, or entities.ErrCatalogUnavailable
// when it is empty.
func (r *Repository) LoadCatalog(ctx context.Context) ([]entities.CatalogRecord, []entities.CatalogRecord, error) {
	heroes, err := r.loadCategory(ctx, entities.CategoryHero)
	if err != nil {
		return nil, nil, err
	}
	items, err := r.loadCategory(ctx, entities.CategoryItem)
	if err != nil {
		return nil, nil, err
	}
	if len(heroes) == 0 && len(items) == 0 {
		return nil, nil, fmt.Errorf("%w: no catalog snapshot in %s", entities.ErrCatalogUnavailable, r.path)
	}
	return heroes, items, nil
}

func (r *Repository) loadCategory(ctx context.Context, category entities.Category) ([]entities.CatalogRecord, error) {
	query := `
		SELECT remote_id, name, localized_name, sanitised_name
		FROM catalog
		WHERE category = ?
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var result []entities.CatalogRecord
	for rows.Next() {
		var rec entities.CatalogRecord
		var key string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.DisplayName, &key); err != nil {
			return nil, fmt.Errorf("scanning catalog record: %w", err)
		}
		rec.Key = entities.CanonicalKey(key)
		result = append(result, rec)
	}
	return result, rows.Err()
}

// SavePatch records a generated patch. Empty IDs and creation times are filled in.
func (r *Repository) SavePatch(ctx context.Context, patch *entities.ArchivedPatch) error {
	if patch.ID == "" {
		patch.ID = generateUUID()
	}
	if patch.CreatedAt.IsZero() {
		patch.CreatedAt = timeNow()
	}

	query := `
		INSERT INTO patches (id, release_id, release_date, url, output_dir, heroes, items, general, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			release_id = excluded.release_id,
			release_date = excluded.release_date,
			url = excluded.url,
			output_dir = excluded.output_dir,
			heroes = excluded.heroes,
			items = excluded.items,
			general = excluded.general
	`
	_, err := r.db.ExecContext(ctx, query,
		patch.ID,
		patch.ReleaseID,
		patch.ReleaseDate,
		patch.URL,
		patch.OutputDir,
		patch.Heroes,
		patch.Items,
		patch.General,
		patch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving patch: %w", err)
	}
	return nil
}

// ListPatches lists archived patches, newest first. A non-positive limit
// returns every patch.
func (r *Repository) ListPatches(ctx context.Context, limit int) ([]entities.ArchivedPatch, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT id, release_id, release_date, url, output_dir, heroes, items, general, created_at
		FROM patches
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	return r.queryPatches(ctx, query, limit)
}

// FindPatchesByRelease lists archived patches for releaseID, newest first.
func (r *Repository) FindPatchesByRelease(ctx context.Context, releaseID string) ([]entities.ArchivedPatch, error) {
	query := `
		SELECT id, release_id, release_date, url, output_dir, heroes, items, general, created_at
		FROM patches
		WHERE release_id = ?
		ORDER BY created_at DESC, rowid DESC
	`
	return r.queryPatches(ctx, query, releaseID)
}

// CountPatches returns the number of archived patches.
func (r *Repository) CountPatches(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM patches`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting patches: %w", err)
	}
	return count, nil
}

// queryPatches is a helper to execute patch queries.
func (r *Repository) queryPatches(ctx context.Context, query string, args ...any) ([]entities.ArchivedPatch, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying patches: %w", err)
	}
	defer rows.Close()

	var result []entities.ArchivedPatch
	for rows.Next() {
		var p entities.ArchivedPatch
		if err := rows.Scan(
			&p.ID,
			&p.ReleaseID,
			&p.ReleaseDate,
			&p.URL,
			&p.OutputDir,
			&p.Heroes,
			&p.Items,
			&p.General,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning patch: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
