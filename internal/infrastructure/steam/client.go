// Package steam provides a CatalogSource backed by the Steam Web API.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
	"github.com/ersonp/patchnotes/internal/infrastructure/httpclient"
)

const (
	heroesEndpoint = "/IEconDOTA2_570/GetHeroes/v1/"
	itemsEndpoint  = "/IEconDOTA2_570/GetGameItems/V001/"
)

// record is the common shape of hero and item entries.
type record struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
}

type heroesResponse struct {
	Result struct {
		Heroes []record `json:"heroes"`
		Status int      `json:"status"`
	} `json:"result"`
}

type itemsResponse struct {
	Result struct {
		Items  []record `json:"items"`
		Status int      `json:"status"`
	} `json:"result"`
}

// Client implements ports.CatalogSource using the Steam Web API.
type Client struct {
	http     *httpclient.Client
	baseURL  string
	apiKey   string
	language string
}

// NewClient creates a new Steam Web API client.
func NewClient(cfg config.SteamConfig, http *httpclient.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("steam api key is required")
	}

	language := cfg.Language
	if language == "" {
		language = "en"
	}

	return &Client{
		http:     http,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: language,
	}, nil
}

// FetchHeroes returns every hero known to the API.
func (c *Client) FetchHeroes(ctx context.Context) ([]entities.CatalogRecord, error) {
	var resp heroesResponse
	if err := c.getJSON(ctx, heroesEndpoint, &resp); err != nil {
		return nil, fmt.Errorf("getting heroes: %w", err)
	}
	return toRecords(resp.Result.Heroes), nil
}

// FetchItems returns every item known to the API.
func (c *Client) FetchItems(ctx context.Context) ([]entities.CatalogRecord, error) {
	var resp itemsResponse
	if err := c.getJSON(ctx, itemsEndpoint, &resp); err != nil {
		return nil, fmt.Errorf("getting items: %w", err)
	}
	return toRecords(resp.Result.Items), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	params := url.Values{
		"key":      {c.apiKey},
		"language": {c.language},
	}

	body, err := c.http.Get(ctx, c.baseURL+endpoint, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %w", entities.ErrRemoteFetchFailed, err)
	}
	return nil
}

func toRecords(raw []record) []entities.CatalogRecord {
	out := make([]entities.CatalogRecord, 0, len(raw))
	for _, r := range raw {
		if r.LocalizedName == "" {
			continue
		}
		out = append(out, entities.CatalogRecord{
			ID:          r.ID,
			Name:        r.Name,
			DisplayName: r.LocalizedName,
			Key:         entities.Sanitize(r.LocalizedName),
		})
	}
	return out
}
