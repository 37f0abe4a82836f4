package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

func TestNewStore_RequiresDir(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(filepath.Join(t.TempDir(), "catalog"))
	require.NoError(t, err)

	heroes := []entities.CatalogRecord{
		{ID: 2, Name: "npc_dota_hero_axe", DisplayName: "Axe", Key: "axe"},
	}
	items := []entities.CatalogRecord{
		{ID: 1, Name: "item_blink", DisplayName: "Blink Dagger", Key: "blinkdagger"},
	}

	require.NoError(t, store.SaveCatalog(ctx, heroes, items))

	gotHeroes, gotItems, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, heroes, gotHeroes)
	assert.Equal(t, items, gotItems)

	// Overwrite replaces the previous snapshot.
	require.NoError(t, store.SaveCatalog(ctx, items, nil))
	gotHeroes, gotItems, err = store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, gotHeroes)
	assert.Empty(t, gotItems)
}

func TestStore_LoadCatalog_Unavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("missing files", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, _, err = store.LoadCatalog(ctx)
		assert.True(t, errors.Is(err, entities.ErrCatalogUnavailable))
	})

	t.Run("empty snapshot", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.SaveCatalog(ctx, nil, nil))

		_, _, err = store.LoadCatalog(ctx)
		assert.True(t, errors.Is(err, entities.ErrCatalogUnavailable))
	})

	t.Run("corrupt file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, heroesFile), []byte("{not json"), 0644))

		store, err := NewStore(dir)
		require.NoError(t, err)

		_, _, err = store.LoadCatalog(ctx)
		assert.True(t, errors.Is(err, entities.ErrCatalogUnavailable))
	})
}

func TestStore_LoadCatalog_FillsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	legacy := `[{"id": 53, "name": "npc_dota_hero_furion", "localized_name": "Nature's Prophet"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, heroesFile), []byte(legacy), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, itemsFile), []byte("[]"), 0644))

	store, err := NewStore(dir)
	require.NoError(t, err)

	heroes, _, err := store.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, heroes, 1)
	assert.Equal(t, entities.CanonicalKey("naturesprophet"), heroes[0].Key)
}
