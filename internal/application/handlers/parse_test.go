package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/domain/mocks"
	"github.com/ersonp/patchnotes/internal/infrastructure/web"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseHandler_Handle_TextFile(t *testing.T) {
	catalogs, patches := newServices(snapshotStore(), nil)
	handler := NewParseHandler(catalogs, patches, nil)

	path := writeTemp(t, "post.txt", "Date: 12 Dec 2016\nURL: "+postURL+"\n"+samplePost)

	record, err := handler.Handle(context.Background(), path, ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, "7.01B", record.ReleaseID())
	assert.Equal(t, postURL, record.URL())
	assert.Equal(t, 12, record.ReleaseDate().Day())
	assert.Equal(t, []string{"Axe"}, record.HeroesChanged())
	assert.Equal(t, []string{"Blink Dagger"}, record.ItemsChanged())
}

func TestParseHandler_Handle_JSONFile(t *testing.T) {
	catalogs, patches := newServices(snapshotStore(), nil)
	handler := NewParseHandler(catalogs, patches, nil)

	path := writeTemp(t, "post.json", `{"date": "December 12, 2016", "contents": "7.01C ===== * Axe: Armor increased"}`)

	record, err := handler.Handle(context.Background(), path, ParseOptions{URL: otherURL})
	require.NoError(t, err)

	assert.Equal(t, "7.01C", record.ReleaseID())
	assert.Equal(t, otherURL, record.URL())
	changes, err := record.ChangesFor("axe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Armor increased"}, changes)
}

func TestParseHandler_Handle_HTMLFile(t *testing.T) {
	catalogs, patches := newServices(snapshotStore(), nil)
	handler := NewParseHandler(catalogs, patches, web.NewExtractor())

	page := `<div class="entry-meta">12 Dec 2016</div><div class="entry-content">` + samplePost + `</div>`
	path := writeTemp(t, "post.html", page)

	t.Run("with url", func(t *testing.T) {
		record, err := handler.Handle(context.Background(), path, ParseOptions{URL: postURL})
		require.NoError(t, err)
		assert.Equal(t, "7.01B", record.ReleaseID())
		assert.True(t, record.HasGeneralChanges())
	})

	t.Run("without url", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), path, ParseOptions{})
		require.Error(t, err)
	})

	t.Run("unsupported site", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), path, ParseOptions{URL: "https://example.com/post"})
		assert.True(t, errors.Is(err, entities.ErrDocumentSectionMissing))
	})
}

func TestParseHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		store   *mocks.CatalogStore
		file    string
		content string
		opts    ParseOptions
		target  error
	}{
		{
			name:    "no catalog",
			store:   &mocks.CatalogStore{},
			file:    "post.txt",
			content: samplePost,
			target:  entities.ErrCatalogUnavailable,
		},
		{
			name:    "no title separator",
			store:   snapshotStore(),
			file:    "post.txt",
			content: "just some text * Axe: x",
			target:  entities.ErrMalformedDocument,
		},
		{
			name:    "unsupported format",
			store:   snapshotStore(),
			file:    "post.csv",
			content: samplePost,
		},
		{
			name:    "forced format mismatch",
			store:   snapshotStore(),
			file:    "post.txt",
			content: samplePost,
			opts:    ParseOptions{Format: "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogs, patches := newServices(tt.store, nil)
			handler := NewParseHandler(catalogs, patches, nil)

			_, err := handler.Handle(context.Background(), writeTemp(t, tt.file, tt.content), tt.opts)
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}
