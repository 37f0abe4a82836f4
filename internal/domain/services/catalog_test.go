package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/mocks"
	"github.com/ersonp/patchnotes/internal/domain/ports"
)

var (
	remoteHeroes = []entities.CatalogRecord{
		{ID: 2, Name: "npc_dota_hero_axe", DisplayName: "Axe"},
		{ID: 1, Name: "npc_dota_hero_antimage", DisplayName: "Anti-Mage"},
	}
	remoteItems = []entities.CatalogRecord{
		{ID: 1, Name: "item_blink", DisplayName: "Blink Dagger"},
	}
	snapshotHeroes = []entities.CatalogRecord{
		{ID: 14, Name: "npc_dota_hero_pudge", DisplayName: "Pudge", Key: "pudge"},
	}
)

func TestCatalogService_Load_FromSnapshot(t *testing.T) {
	store := &mocks.CatalogStore{Heroes: snapshotHeroes, Items: []entities.CatalogRecord{}}
	source := &mocks.CatalogSource{Heroes: remoteHeroes, Items: remoteItems}
	svc := NewCatalogService(source, store, nil)

	catalog, err := svc.Load(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, catalog.IsHero("pudge"))
	assert.False(t, catalog.IsHero("axe"))
	assert.Equal(t, 0, source.Calls, "no refresh requested")
}

func TestCatalogService_Load_RefreshPersistsSnapshot(t *testing.T) {
	store := &mocks.CatalogStore{Heroes: snapshotHeroes}
	source := &mocks.CatalogSource{Heroes: remoteHeroes, Items: remoteItems}
	svc := NewCatalogService(source, store, nil)

	catalog, err := svc.Load(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, catalog.IsHero("antimage"))
	assert.True(t, catalog.IsItem("blinkdagger"))
	assert.False(t, catalog.IsHero("pudge"))

	require.True(t, store.Saved)
	require.Len(t, store.Heroes, 2)
	assert.Equal(t, entities.CanonicalKey("axe"), store.Heroes[0].Key)
	assert.Equal(t, entities.CanonicalKey("antimage"), store.Heroes[1].Key)
}

func TestCatalogService_Load_RefreshFailureFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		source *mocks.CatalogSource
	}{
		{
			name:   "heroes request fails",
			source: &mocks.CatalogSource{HeroesErr: entities.ErrRemoteFetchFailed},
		},
		{
			name:   "items request fails",
			source: &mocks.CatalogSource{Heroes: remoteHeroes, ItemsErr: errors.New("connection reset")},
		},
		{
			name:   "empty response",
			source: &mocks.CatalogSource{Heroes: remoteHeroes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			store := &mocks.CatalogStore{Heroes: snapshotHeroes}
			svc := NewCatalogService(tt.source, store, zap.New(core))

			catalog, err := svc.Load(context.Background(), true)
			require.NoError(t, err)

			assert.True(t, catalog.IsHero("pudge"))
			assert.False(t, store.Saved)
			assert.Equal(t, 1, logs.FilterMessage("catalog refresh failed, using local snapshot").Len())
		})
	}
}

func TestCatalogService_Load_SaveFailureKeepsFetchedCatalog(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	store := &mocks.CatalogStore{SaveErr: errors.New("disk full")}
	source := &mocks.CatalogSource{Heroes: remoteHeroes, Items: remoteItems}
	svc := NewCatalogService(source, store, zap.New(core))

	catalog, err := svc.Load(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, catalog.IsHero("axe"))
	assert.Equal(t, 1, logs.Len())
}

func TestCatalogService_Load_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		source  ports.CatalogSource
		store   *mocks.CatalogStore
		refresh bool
	}{
		{
			name:  "no snapshot and no refresh",
			store: &mocks.CatalogStore{},
		},
		{
			name:    "no snapshot and refresh fails",
			source:  &mocks.CatalogSource{HeroesErr: entities.ErrRemoteFetchFailed},
			store:   &mocks.CatalogStore{},
			refresh: true,
		},
		{
			name:  "unreadable snapshot",
			store: &mocks.CatalogStore{LoadErr: errors.New("corrupt file")},
		},
		{
			name:  "empty snapshot",
			store: &mocks.CatalogStore{Heroes: []entities.CatalogRecord{}, Items: []entities.CatalogRecord{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(tt.source, tt.store, nil)

			_, err := svc.Load(context.Background(), tt.refresh)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrCatalogUnavailable))
		})
	}
}

func TestCatalogService_Refresh_NoSource(t *testing.T) {
	svc := NewCatalogService(nil, &mocks.CatalogStore{}, nil)

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrRemoteFetchFailed))
}
