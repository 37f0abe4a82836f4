package httpclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
)

func testConfig() config.HTTPConfig {
	return config.HTTPConfig{Timeout: 5 * time.Second, RequestsPerSecond: 100, UserAgent: "patchnotes-test"}
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "patchnotes-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(testConfig())
	body, err := c.Get(context.Background(), srv.URL, url.Values{"key": {"secret"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(testConfig())
	_, err := c.Get(context.Background(), srv.URL, url.Values{"key": {"secret"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrRemoteFetchFailed))
	assert.Contains(t, err.Error(), "403")
	assert.NotContains(t, err.Error(), "secret")
}

func TestClient_Get_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(testConfig())
	_, err := c.Get(context.Background(), srv.URL, url.Values{"key": {"secret"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrRemoteFetchFailed))
	assert.NotContains(t, err.Error(), "secret")
}

func TestClient_Get_CancelledContext(t *testing.T) {
	c := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "http://example.invalid", nil)
	require.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("\x89PNG"))
	}))
	defer srv.Close()

	c := New(testConfig())

	var buf bytes.Buffer
	require.NoError(t, c.Download(context.Background(), srv.URL+"/axe.png", &buf))
	assert.Equal(t, "\x89PNG", buf.String())

	err := c.Download(context.Background(), srv.URL+"/missing.png", &bytes.Buffer{})
	assert.True(t, errors.Is(err, entities.ErrRemoteFetchFailed))
}
