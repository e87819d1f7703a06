/**
 * @description
 * Time-bounded single-value price cache, one slot per tracked asset.
 * Each asset carries its own TTL, live fetch function, optional durable
 * history fallback, and optional hardcoded default. Expiry is lazy:
 * checked at read time, never proactively evicted.
 *
 * Fallback order on a failed (or skipped) live fetch:
 *   last cached value -> durable history value -> default.
 * Get only errors when every step is absent; assets with a default can
 * therefore never fail.
 *
 * The clock is injected so tests can control expiry deterministically.
 *
 * @notes
 * - The mutex only guards slot memory. Two concurrent readers that both
 *   observe an expired slot will both issue a live fetch; that stampede is
 *   accepted at this request volume and deliberately not deduplicated.
 */

package pricing

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Kind identifies a tracked asset
type Kind string

const (
	KindGold     Kind = "gold"      // gold token price in USD
	KindNFTFloor Kind = "nft_floor" // NFT collection floor price in SOL
	KindSolUSD   Kind = "sol_usd"   // SOL price in USD
)

// ResultSource labels where a returned price came from, so operators can
// tell a live answer from a stale or synthetic one.
type ResultSource string

const (
	SourceFresh   ResultSource = "fresh"   // just fetched from the live source
	SourceCached  ResultSource = "cached"  // cache hit within TTL
	SourceStale   ResultSource = "stale"   // expired cached value, live fetch failed
	SourceHistory ResultSource = "history" // most recent durable history value
	SourceDefault ResultSource = "default" // hardcoded per-asset default
)

// ErrUnavailable is returned when no cached, historical, or default value
// exists for the asset. It is the only error Get can return.
var ErrUnavailable = errors.New("price unavailable")

// FetchFunc retrieves a price from a live source or durable store.
// A non-positive value is treated as a failure by the cache.
type FetchFunc func(ctx context.Context) (float64, error)

// AssetConfig describes one cached asset
type AssetConfig struct {
	TTL     time.Duration
	Fetch   FetchFunc // live source; nil or erroring triggers the fallback chain
	History FetchFunc // optional durable fallback (most recent stored value)
	Default *float64  // optional synthetic fallback

	// OnRefresh is invoked after every successful live fetch (audit trail,
	// pub/sub). It must not block long and has no way to fail the read.
	OnRefresh func(price float64)
}

type slot struct {
	cfg       AssetConfig
	value     *float64
	fetchedAt *time.Time
}

// Cache holds one price slot per registered asset kind
type Cache struct {
	now func() time.Time

	mu    sync.Mutex
	slots map[Kind]*slot
}

// New creates an empty cache using the given clock
func New(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		now:   now,
		slots: make(map[Kind]*slot),
	}
}

// Register adds an asset. Registering twice replaces the config but keeps
// any cached value.
func (c *Cache) Register(kind Kind, cfg AssetConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.slots[kind]; ok {
		existing.cfg = cfg
		return
	}
	c.slots[kind] = &slot{cfg: cfg}
}

// Get returns the current price of the asset, refreshing from the live
// source only when the cached value has expired or forceRefresh is set.
func (c *Cache) Get(ctx context.Context, kind Kind, forceRefresh bool) (float64, ResultSource, error) {
	c.mu.Lock()
	s, ok := c.slots[kind]
	if !ok {
		c.mu.Unlock()
		return 0, "", ErrUnavailable
	}

	if !forceRefresh && s.value != nil && s.fetchedAt != nil {
		if c.now().Sub(*s.fetchedAt) < s.cfg.TTL {
			v := *s.value
			c.mu.Unlock()
			return v, SourceCached, nil
		}
	}
	cfg := s.cfg
	c.mu.Unlock()

	// Live fetch, outside the lock
	if cfg.Fetch != nil {
		price, err := cfg.Fetch(ctx)
		if err == nil && price > 0 {
			now := c.now()
			c.mu.Lock()
			s.value = &price
			s.fetchedAt = &now
			c.mu.Unlock()
			if cfg.OnRefresh != nil {
				cfg.OnRefresh(price)
			}
			return price, SourceFresh, nil
		}
	}

	// (a) last cached value, even if expired. A failed forced refresh can
	// land here with the slot still inside its TTL; label by age.
	c.mu.Lock()
	if s.value != nil {
		v := *s.value
		src := SourceStale
		if s.fetchedAt != nil && c.now().Sub(*s.fetchedAt) < s.cfg.TTL {
			src = SourceCached
		}
		c.mu.Unlock()
		return v, src, nil
	}
	c.mu.Unlock()

	// (b) most recent durable history value
	if cfg.History != nil {
		if v, err := cfg.History(ctx); err == nil && v > 0 {
			return v, SourceHistory, nil
		}
	}

	// (c) hardcoded default
	if cfg.Default != nil {
		return *cfg.Default, SourceDefault, nil
	}

	return 0, "", ErrUnavailable
}

// CachedAt returns when the asset was last successfully fetched, or nil
func (c *Cache) CachedAt(kind Kind) *time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[kind]
	if !ok || s.fetchedAt == nil {
		return nil
	}
	t := *s.fetchedAt
	return &t
}

// HasFresh reports whether a cache hit within TTL would be served right now
func (c *Cache) HasFresh(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[kind]
	if !ok || s.value == nil || s.fetchedAt == nil {
		return false
	}
	return c.now().Sub(*s.fetchedAt) < s.cfg.TTL
}
