/**
 * @description
 * HTTP Client for the Nightvale game production API.
 * Used by the snapshot fetcher (authenticated GETs returning opaque JSON)
 * and by the reverse proxy (verbatim request forwarding).
 *
 * API Base URL: https://api-production.defidungeons.gg
 *
 * The game API expects browser-identifying headers on top of the bearer
 * token and wallet address; requests without them are rejected upstream.
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 */

package nightvale

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
)

const (
	DefaultTimeout = 10 * time.Second

	originHeader  = "https://dungeons.game"
	refererHeader = "https://dungeons.game/"
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client for the game production API
type Client struct {
	BaseURL       string
	BearerToken   string
	WalletAddress string
	HTTPClient    *http.Client
}

// NewClient creates a new game API client with the configured credentials
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:       cfg.Nightvale.BaseURL,
		BearerToken:   cfg.Nightvale.BearerToken,
		WalletAddress: cfg.Nightvale.WalletAddress,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// HasCredentials reports whether server-side game credentials are configured
func (c *Client) HasCredentials() bool {
	return c.BearerToken != "" && c.WalletAddress != ""
}

func (c *Client) headers(token, wallet string) http.Header {
	h := http.Header{}
	h.Set("accept", "application/json, text/plain, */*")
	h.Set("Content-Type", "application/json")
	if token != "" {
		if !strings.HasPrefix(token, "Bearer ") {
			token = "Bearer " + token
		}
		h.Set("Authorization", token)
	}
	if wallet != "" {
		h.Set("x-selected-wallet-address", wallet)
	}
	h.Set("Origin", originHeader)
	h.Set("Referer", refererHeader)
	h.Set("User-Agent", userAgent)
	return h
}

// Get performs an authenticated GET against the game API and returns the
// raw JSON payload. The schema is opaque to this service.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	u, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return nil, err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = c.headers(c.BearerToken, c.WalletAddress)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game api error: %s returned status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("game api returned malformed JSON for %s", endpoint)
	}
	return json.RawMessage(body), nil
}

// ForwardResult is the upstream response of a proxied request
type ForwardResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forward relays a request to the game API using the supplied credentials
// and returns the upstream response verbatim.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, body []byte, token, wallet string) (*ForwardResult, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, err
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header = c.headers(token, wallet)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &ForwardResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}
