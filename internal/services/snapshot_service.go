/**
 * @description
 * Snapshot fetcher for the game production API.
 * Pulls account and world state (achievement stats, balances, dungeon
 * definitions, item inventory, recent activity, drop tables), wraps each
 * payload in a timestamped envelope, and lands it both on disk (served by
 * the /data endpoint) and in Redis for quick reads.
 *
 * Upstream failures degrade to per-endpoint defaults; a run never aborts
 * halfway because one endpoint is down.
 *
 * @dependencies
 * - backend/internal/nightvale
 * - github.com/redis/go-redis/v9
 * - github.com/google/uuid
 */

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/nightvale"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SnapshotKeyPrefix namespaces snapshot copies in Redis
	SnapshotKeyPrefix = "snapshot:"

	// snapshotCacheTTL bounds how long a Redis copy outlives its fetch
	snapshotCacheTTL = 24 * time.Hour

	// activityLimit matches the upstream page size for activity feeds
	activityLimit = "100000"
)

// walletField is the upstream field activity entries are filtered on
const walletField = "walletId"

// dungeonNames maps upstream dungeon IDs to display names
var dungeonNames = map[string]string{
	"CrimsonHall":         "Crimson Hall",
	"FrostboundKeep":      "Frostbound Keep",
	"AncientTombs":        "Ancient Tombs",
	"ThievesDen":          "Thieves Den",
	"ForgottenCrossroads": "Forgotten Grove",
}

// nftClasses are tried in order until a dungeon returns drops
var nftClasses = []string{"Warrior", "Mage", "Marksman"}

// Envelope wraps every snapshot payload with its fetch time
type Envelope struct {
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

// DungeonDrops is the per-dungeon slice of the drop chance snapshot
type DungeonDrops struct {
	Name  string            `json:"name"`
	Drops []json.RawMessage `json:"drops"`
}

// DropChances is the combined drop table snapshot
type DropChances struct {
	Timestamp       string                  `json:"timestamp"`
	DungeonSpecific map[string]DungeonDrops `json:"dungeon_specific"`
}

// SnapshotService runs snapshot fetches against the game API
type SnapshotService struct {
	Client  *nightvale.Client
	Redis   *redis.Client
	DataDir string
}

func NewSnapshotService(client *nightvale.Client, rdb *redis.Client, dataDir string) *SnapshotService {
	return &SnapshotService{
		Client:  client,
		Redis:   rdb,
		DataDir: dataDir,
	}
}

// RunAll fetches every snapshot endpoint once. Individual endpoint
// failures are logged and replaced with defaults; only an unusable data
// directory fails the run.
func (s *SnapshotService) RunAll(ctx context.Context) error {
	runID := uuid.NewString()
	logger.Info("Starting snapshot run %s", runID)

	if err := os.MkdirAll(s.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.DataDir, err)
	}

	s.fetchAchievementStats(ctx)
	s.fetchPlain(ctx, "/fungible-asset/my-balances", "fungible_balances.json")
	s.fetchPlain(ctx, "/dungeon", "dungeon_definitions.json")
	s.fetchPlain(ctx, "/item/get-all-items", "inventory_items.json")
	s.fetchWalletActivity(ctx, "/quest/recent-claims", "recent_quest_claims.json")
	s.fetchWalletActivity(ctx, "/trip/recent-rewards", "recent_trip_rewards.json")
	s.fetchWalletActivity(ctx, "/loot-exchange/recent-exchanges", "recent_exchanges.json")
	s.fetchDropChances(ctx)

	logger.Info("Completed snapshot run %s", runID)
	return nil
}

// fetchAchievementStats falls back to an all-zero stats object so the
// frontend always has a well-formed document to render
func (s *SnapshotService) fetchAchievementStats(ctx context.Context) {
	var data any
	raw, err := s.Client.Get(ctx, "/user/achievement-stat/me", nil)
	if err != nil {
		logger.Error("Failed to fetch achievement stats: %v", err)
		data = map[string]int{
			"totalQuestCompleted":    0,
			"totalDungeonsCompleted": 0,
			"totalRaidBossesKilled":  0,
			"totalGoldEarned":        0,
		}
	} else {
		data = raw
	}
	s.save(ctx, "achievement_stats.json", data)
}

// fetchPlain saves an endpoint's payload as-is, defaulting to an empty list
func (s *SnapshotService) fetchPlain(ctx context.Context, endpoint, filename string) {
	var data any = []any{}
	raw, err := s.Client.Get(ctx, endpoint, nil)
	if err != nil {
		logger.Error("Failed to fetch %s: %v", endpoint, err)
	} else {
		data = raw
	}
	s.save(ctx, filename, data)
}

// fetchWalletActivity pulls an activity feed and keeps only entries
// belonging to the configured wallet
func (s *SnapshotService) fetchWalletActivity(ctx context.Context, endpoint, filename string) {
	filtered := []json.RawMessage{}

	params := url.Values{}
	params.Set("limit", activityLimit)

	raw, err := s.Client.Get(ctx, endpoint, params)
	if err != nil {
		logger.Error("Failed to fetch %s: %v", endpoint, err)
	} else {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			logger.Error("Unexpected payload shape from %s: %v", endpoint, err)
		} else {
			for _, entry := range entries {
				var fields map[string]any
				if err := json.Unmarshal(entry, &fields); err != nil {
					continue
				}
				if wallet, ok := fields[walletField].(string); ok && wallet == s.Client.WalletAddress {
					filtered = append(filtered, entry)
				}
			}
		}
	}

	s.save(ctx, filename, filtered)
}

// fetchDropChances queries each dungeon's drop table, trying each NFT
// class until one returns data
func (s *SnapshotService) fetchDropChances(ctx context.Context) {
	combined := DropChances{
		Timestamp:       time.Now().Format(time.RFC3339),
		DungeonSpecific: map[string]DungeonDrops{},
	}

	for dungeonID, dungeonName := range dungeonNames {
		entry := DungeonDrops{Name: dungeonName, Drops: []json.RawMessage{}}

		for _, class := range nftClasses {
			params := url.Values{}
			params.Set("dungeonId", dungeonID)
			params.Set("nftClass", class)

			raw, err := s.Client.Get(ctx, "/dungeon/base-item-drop-chances", params)
			if err != nil {
				logger.Error("Failed to fetch drops for %s with %s: %v", dungeonName, class, err)
				continue
			}

			var payload struct {
				Data []json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Data) == 0 {
				continue
			}

			entry.Drops = payload.Data
			logger.Info("Fetched %d drops for %s with %s", len(payload.Data), dungeonName, class)
			break
		}

		combined.DungeonSpecific[dungeonID] = entry
	}

	s.writeFile("drop_chances.json", combined)
	s.cacheInRedis(ctx, "drop_chances.json", combined)
}

// save wraps a payload in an envelope, writes it to disk, and caches it
func (s *SnapshotService) save(ctx context.Context, filename string, data any) {
	envelope := Envelope{
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	}
	s.writeFile(filename, envelope)
	s.cacheInRedis(ctx, filename, envelope)
}

func (s *SnapshotService) writeFile(filename string, payload any) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Error("Failed to encode snapshot %s: %v", filename, err)
		return
	}

	path := filepath.Join(s.DataDir, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		logger.Error("Failed to write snapshot %s: %v", path, err)
		return
	}
	logger.Info("Saved %s", filename)
}

func (s *SnapshotService) cacheInRedis(ctx context.Context, filename string, payload any) {
	if s.Redis == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	key := SnapshotKeyPrefix + filename
	if err := s.Redis.Set(ctx, key, body, snapshotCacheTTL).Err(); err != nil {
		logger.Error("Failed to cache snapshot %s in Redis: %v", key, err)
	}
}
