// Package httpclient provides the rate-limited HTTP client used for every
// outgoing request (Steam Web API, patch posts, icon CDN).
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/ersonp/patchnotes/internal/domain/entities"
	"github.com/ersonp/patchnotes/internal/infrastructure/config"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 16 << 20

// Client wraps http.Client with a shared rate limiter and user agent.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	rateLimiter *rate.Limiter
}

// New creates a Client from cfg.
func New(cfg config.HTTPConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		userAgent:   cfg.UserAgent,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Get performs a GET request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses wrap entities.ErrRemoteFetchFailed.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	resp, err := c.do(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", entities.ErrRemoteFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", entities.ErrRemoteFetchFailed, resp.StatusCode, redact(rawURL))
	}

	return body, nil
}

// Download streams a 2xx response body into w.
func (c *Client) Download(ctx context.Context, rawURL string, w io.Writer) error {
	resp, err := c.do(ctx, rawURL, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d from %s", entities.ErrRemoteFetchFailed, resp.StatusCode, redact(rawURL))
	}

	if _, err := io.Copy(w, io.LimitReader(resp.Body, maxBodySize)); err != nil {
		return fmt.Errorf("%w: reading body: %w", entities.ErrRemoteFetchFailed, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	fullURL := rawURL
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: GET %s: %w", entities.ErrRemoteFetchFailed, redact(rawURL), err)
	}
	return resp, nil
}

// redact strips the query string, which may carry an API key.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}
