/**
 * @description
 * Service layer for asset pricing.
 * Owns the per-asset price cache and wires it to the live sources
 * (Birdeye for token prices, Magic Eden for the NFT floor), the durable
 * gold price history in Postgres, and the Redis price update channel.
 *
 * Fallback behavior per asset:
 * - gold token: cache -> Birdeye -> stale cache -> gold_price_history -> 0.1
 * - NFT floor (SOL): cache -> Magic Eden -> stale cache (no default)
 * - SOL/USD: cache -> Birdeye -> stale cache (no default)
 * Only the composite NFT USD price can surface an error, and only when a
 * leg has no value of any provenance.
 *
 * @dependencies
 * - backend/internal/pricing
 * - backend/internal/birdeye
 * - backend/internal/magiceden
 * - gorm.io/gorm
 * - github.com/redis/go-redis/v9
 */

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dungeon-tracker/backend/internal/birdeye"
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/magiceden"
	"github.com/dungeon-tracker/backend/internal/models"
	"github.com/dungeon-tracker/backend/internal/pricing"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// PriceUpdateChannel carries JSON price updates for the SSE stream
	PriceUpdateChannel = "prices:updates"

	GoldPriceTTL = 5 * time.Minute
	NFTFloorTTL  = 5 * time.Minute
	SolPriceTTL  = 1 * time.Minute

	// DefaultGoldPrice is the synthetic last-resort gold price (USD)
	DefaultGoldPrice = 0.1
)

// ErrPriceUnavailable is surfaced when the composite NFT USD price cannot
// be computed because a leg has no cached, historical, or default value.
var ErrPriceUnavailable = errors.New("nft price unavailable")

// PriceService answers price queries through the per-asset cache
type PriceService struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Birdeye   *birdeye.Client
	MagicEden *magiceden.Client

	cache *pricing.Cache
	now   func() time.Time
}

// GoldQuote is the response shape of the gold price endpoint
type GoldQuote struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	Cached    bool      `json:"cached"`
}

// NFTQuote is the response shape of the NFT floor price endpoint
type NFTQuote struct {
	PriceUSD  float64    `json:"price"`
	PriceSOL  float64    `json:"price_sol"`
	SolUSD    float64    `json:"sol_usd"`
	Timestamp *time.Time `json:"timestamp"`
}

// PriceUpdate is published on PriceUpdateChannel after every live refresh
type PriceUpdate struct {
	Asset     string    `json:"asset"`
	Price     float64   `json:"price"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPriceService builds the service and registers all tracked assets.
// The clock is injectable for tests; pass nil for time.Now.
func NewPriceService(db *gorm.DB, rdb *redis.Client, be *birdeye.Client, me *magiceden.Client, cfg *config.Config, now func() time.Time) *PriceService {
	if now == nil {
		now = time.Now
	}

	s := &PriceService{
		DB:        db,
		Redis:     rdb,
		Birdeye:   be,
		MagicEden: me,
		cache:     pricing.New(now),
		now:       now,
	}

	goldDefault := DefaultGoldPrice
	goldMint := cfg.Birdeye.GoldMint
	solMint := cfg.Birdeye.SolMint

	s.cache.Register(pricing.KindGold, pricing.AssetConfig{
		TTL: GoldPriceTTL,
		Fetch: func(ctx context.Context) (float64, error) {
			return be.GetPrice(ctx, goldMint)
		},
		History:   s.latestStoredGoldPrice,
		Default:   &goldDefault,
		OnRefresh: s.recordGoldPrice,
	})

	s.cache.Register(pricing.KindNFTFloor, pricing.AssetConfig{
		TTL: NFTFloorTTL,
		Fetch: func(ctx context.Context) (float64, error) {
			return me.GetFloorPriceSOL(ctx)
		},
	})

	s.cache.Register(pricing.KindSolUSD, pricing.AssetConfig{
		TTL: SolPriceTTL,
		Fetch: func(ctx context.Context) (float64, error) {
			return be.GetPrice(ctx, solMint)
		},
	})

	return s
}

// GetAssetPrice returns a best-effort price for any tracked asset,
// 0 when nothing of any provenance is known. Never errors.
func (s *PriceService) GetAssetPrice(ctx context.Context, kind pricing.Kind, forceRefresh bool) float64 {
	price, source, err := s.cache.Get(ctx, kind, forceRefresh)
	if err != nil {
		return 0
	}
	s.logServed(string(kind), price, source)
	return price
}

// GetGoldPrice returns the current gold token price in USD.
// It never fails: the asset carries a hardcoded default.
func (s *PriceService) GetGoldPrice(ctx context.Context, forceRefresh bool) float64 {
	price, source, err := s.cache.Get(ctx, pricing.KindGold, forceRefresh)
	if err != nil {
		// Unreachable while the gold asset has a default; keep the endpoint total anyway
		logger.Error("gold price unavailable, serving default: %v", err)
		return DefaultGoldPrice
	}
	s.logServed("gold", price, source)
	return price
}

// GetGoldQuote returns the gold price with cache metadata for the API
func (s *PriceService) GetGoldQuote(ctx context.Context) GoldQuote {
	price, source, err := s.cache.Get(ctx, pricing.KindGold, false)
	if err != nil {
		price, source = DefaultGoldPrice, pricing.SourceDefault
	}
	s.logServed("gold", price, source)

	quote := GoldQuote{
		Price:     price,
		Cached:    source == pricing.SourceCached,
		Timestamp: s.now(),
	}
	if at := s.cache.CachedAt(pricing.KindGold); at != nil {
		quote.Timestamp = *at
	}
	return quote
}

// GetNFTQuote computes the composite NFT floor price in USD:
// floor (SOL) x SOL/USD. This is the only read that can fail.
func (s *PriceService) GetNFTQuote(ctx context.Context) (*NFTQuote, error) {
	floorSOL, floorSource, err := s.cache.Get(ctx, pricing.KindNFTFloor, false)
	if err != nil {
		return nil, fmt.Errorf("%w: no floor price", ErrPriceUnavailable)
	}
	s.logServed("nft_floor", floorSOL, floorSource)

	solUSD, solSource, err := s.cache.Get(ctx, pricing.KindSolUSD, false)
	if err != nil {
		return nil, fmt.Errorf("%w: no SOL/USD price", ErrPriceUnavailable)
	}
	s.logServed("sol_usd", solUSD, solSource)

	return &NFTQuote{
		PriceUSD:  floorSOL * solUSD,
		PriceSOL:  floorSOL,
		SolUSD:    solUSD,
		Timestamp: s.cache.CachedAt(pricing.KindNFTFloor),
	}, nil
}

// latestStoredGoldPrice reads the most recent durable gold price
func (s *PriceService) latestStoredGoldPrice(ctx context.Context) (float64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("no database configured")
	}
	var row models.GoldPriceHistory
	if err := s.DB.WithContext(ctx).Order("timestamp DESC").First(&row).Error; err != nil {
		return 0, err
	}
	return row.Price, nil
}

// recordGoldPrice appends a fresh gold price to the durable history and
// publishes it on the price update channel. Fire-and-forget: failures are
// logged and never fail the price read.
func (s *PriceService) recordGoldPrice(price float64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := s.now()
	if s.DB != nil {
		row := models.GoldPriceHistory{Timestamp: now, Price: price}
		if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
			logger.Error("Failed to store gold price history: %v", err)
		}
	}

	if s.Redis != nil {
		update := PriceUpdate{Asset: "gold", Price: price, Source: "birdeye", Timestamp: now}
		payload, err := json.Marshal(update)
		if err == nil {
			if err := s.Redis.Publish(ctx, PriceUpdateChannel, payload).Err(); err != nil {
				logger.Error("Failed to publish gold price update: %v", err)
			}
		}
	}
}

func (s *PriceService) logServed(asset string, price float64, source pricing.ResultSource) {
	if source == pricing.SourceCached || source == pricing.SourceFresh {
		return
	}
	// Stale/history/default answers are worth noticing in the logs
	logger.Info("Price for %s served from %s source: %f", asset, source, price)
}
