package handlers

import (
	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/mocks"
	"github.com/ersonp/patchnotes/internal/domain/services"
)

const samplePost = "7.01B:\n====\n" +
	"* Axe: Base damage increased by 2\n" +
	"* Blink Dagger: Cooldown reduced to 12\n" +
	"* Fixed a bug with the minimap"

const (
	postURL  = "http://www.dota2.com/news/updates/25808/"
	otherURL = "http://www.dota2.com/news/updates/25900/"
)

func snapshotStore() *mocks.CatalogStore {
	return &mocks.CatalogStore{
		Heroes: []entities.CatalogRecord{{ID: 2, Name: "npc_dota_hero_axe", DisplayName: "Axe", Key: "axe"}},
		Items:  []entities.CatalogRecord{{ID: 1, Name: "item_blink", DisplayName: "Blink Dagger", Key: "blinkdagger"}},
	}
}

func newServices(store *mocks.CatalogStore, fetcher *mocks.DocumentFetcher) (*services.CatalogService, *services.PatchService) {
	catalogs := services.NewCatalogService(nil, store, nil)
	patches := services.NewPatchService(fetcher, &mocks.SectionExtractor{RawDate: "12 Dec 2016"}, nil)
	return catalogs, patches
}
