/**
 * @description
 * HTTP Client for the Magic Eden collection stats API.
 * Fetches the NFT floor price (returned in lamports) for a collection.
 *
 * API Base URL: https://api-mainnet.magiceden.dev
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 */

package magiceden

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
)

const (
	DefaultTimeout = 10 * time.Second

	lamportsPerSol = 1e9
)

// Client for the Magic Eden API
type Client struct {
	BaseURL    string
	Collection string
	HTTPClient *http.Client
}

// NewClient creates a new Magic Eden client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    cfg.MagicEden.BaseURL,
		Collection: cfg.MagicEden.Collection,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// GetCollectionStats fetches the stats for the configured collection
// GET /v2/collections/{symbol}/stats
func (c *Client) GetCollectionStats(ctx context.Context) (*CollectionStats, error) {
	u := fmt.Sprintf("%s/v2/collections/%s/stats", c.BaseURL, c.Collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("magic eden api error: status %d", resp.StatusCode)
	}

	var stats CollectionStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetFloorPriceSOL fetches the current floor price converted to SOL
func (c *Client) GetFloorPriceSOL(ctx context.Context) (float64, error) {
	stats, err := c.GetCollectionStats(ctx)
	if err != nil {
		return 0, err
	}
	if stats.FloorPrice <= 0 {
		return 0, fmt.Errorf("magic eden api returned no floor price for %s", c.Collection)
	}
	return stats.FloorPrice / lamportsPerSol, nil
}
