/**
 * @description
 * HTTP Client for the Birdeye price API.
 * Fetches USD prices for Solana tokens by mint address.
 *
 * API Base URL: https://public-api.birdeye.so
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 */

package birdeye

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
)

const (
	DefaultTimeout = 5 * time.Second
)

// ErrNoAPIKey signals that no credential is configured and the live call
// was skipped. Callers treat it like any other fetch failure.
var ErrNoAPIKey = errors.New("birdeye api key is not configured")

// Client for the Birdeye price API
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new Birdeye client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.Birdeye.BaseURL,
		APIKey:  cfg.Birdeye.APIKey,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// GetPrice fetches the current USD price for a token mint address
// GET /defi/price?address={mint}
func (c *Client) GetPrice(ctx context.Context, mint string) (float64, error) {
	if mint == "" {
		return 0, fmt.Errorf("mint address is required")
	}
	if c.APIKey == "" {
		return 0, ErrNoAPIKey
	}

	u, err := url.Parse(fmt.Sprintf("%s/defi/price", c.BaseURL))
	if err != nil {
		return 0, err
	}
	q := u.Query()
	q.Set("address", mint)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-chain", "solana")
	req.Header.Set("X-API-KEY", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("birdeye api error: status %d", resp.StatusCode)
	}

	var result PriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}

	if !result.Success || result.Data == nil || result.Data.Value == nil {
		return 0, fmt.Errorf("birdeye api returned no price for %s", mint)
	}
	if *result.Data.Value <= 0 {
		return 0, fmt.Errorf("birdeye api returned non-positive price %f for %s", *result.Data.Value, mint)
	}

	return *result.Data.Value, nil
}
