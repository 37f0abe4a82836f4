package steam

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
	"github.com/ersonp/patchnotes/internal/infrastructure/httpclient"
)

const heroesJSON = `{"result":{"heroes":[
	{"name":"npc_dota_hero_antimage","id":1,"localized_name":"Anti-Mage"},
	{"name":"npc_dota_hero_furion","id":53,"localized_name":"Nature's Prophet"},
	{"name":"npc_dota_hero_unnamed","id":99,"localized_name":""}
],"status":200,"count":3}}`

const itemsJSON = `{"result":{"items":[
	{"id":1,"name":"item_blink","cost":2250,"secret_shop":0,"side_shop":1,"recipe":0,"localized_name":"Blink Dagger"}
],"status":200}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	hc := httpclient.New(config.HTTPConfig{Timeout: 5 * time.Second, RequestsPerSecond: 100})
	c, err := NewClient(config.SteamConfig{APIKey: "test-key", BaseURL: srv.URL + "/"}, hc)
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(config.SteamConfig{}, nil)
	require.Error(t, err)
}

func TestClient_FetchHeroes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, heroesEndpoint, r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(heroesJSON))
	})

	heroes, err := c.FetchHeroes(context.Background())
	require.NoError(t, err)

	require.Len(t, heroes, 2)
	assert.Equal(t, entities.CatalogRecord{
		ID: 1, Name: "npc_dota_hero_antimage", DisplayName: "Anti-Mage", Key: "antimage",
	}, heroes[0])
	assert.Equal(t, entities.CanonicalKey("naturesprophet"), heroes[1].Key)
}

func TestClient_FetchItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, itemsEndpoint, r.URL.Path)
		_, _ = w.Write([]byte(itemsJSON))
	})

	items, err := c.FetchItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "item_blink", items[0].Name)
	assert.Equal(t, entities.CanonicalKey("blinkdagger"), items[0].Key)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>oops</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			_, err := c.FetchHeroes(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrRemoteFetchFailed))
		})
	}
}
