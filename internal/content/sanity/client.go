// Package sanity implements the content.Store contract against the
// Sanity query HTTP API.
package sanity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masera/storefront/internal/content"
	"github.com/masera/storefront/internal/models"
)

// Client issues GROQ queries against the Sanity data API. Responses can
// be cached between requests via an optional content.Cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      content.Cache
	cacheTTL   time.Duration
}

func NewClient(cfg models.SanityConfig) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s",
			cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset),
		token: cfg.Token,
	}
}

// WithCache enables response caching. Cache misses and cache errors both
// fall through to the API.
func (c *Client) WithCache(cache content.Cache, ttl time.Duration) *Client {
	c.cache = cache
	c.cacheTTL = ttl
	return c
}

// Fetch runs a GROQ query and unmarshals the result payload into result.
// Query parameters are JSON-encoded per the Sanity API convention.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]interface{}, result interface{}) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	requestURL := c.baseURL + "?" + values.Encode()

	cacheKey := queryCacheKey(requestURL)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey); ok {
			return json.Unmarshal(raw, result)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("building query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("querying content store: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading query response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content store returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding query envelope: %w", err)
	}

	if c.cache != nil && len(envelope.Result) > 0 {
		c.cache.Set(ctx, cacheKey, envelope.Result, c.cacheTTL)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		log.Debug().Str("url", requestURL).Msg("query returned no result")
		return nil
	}
	return json.Unmarshal(envelope.Result, result)
}

func queryCacheKey(requestURL string) string {
	sum := sha256.Sum256([]byte(requestURL))
	return "content:query:" + hex.EncodeToString(sum[:])
}
