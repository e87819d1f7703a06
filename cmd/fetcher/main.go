/**
 * @description
 * Fetcher Service Entry Point.
 * Long-running worker that periodically snapshots the game production API
 * into the data directory and Redis. Runs once at boot, then on the
 * configured interval until SIGINT/SIGTERM.
 *
 * @dependencies
 * - backend/internal/config
 * - backend/internal/db
 * - backend/internal/nightvale
 * - backend/internal/services
 */

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/db"
	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/nightvale"
	"github.com/dungeon-tracker/backend/internal/services"
)

func main() {
	logger.Info("🔥 Starting Dungeon Tracker fetcher...")

	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}

	// 2. Connect Redis (snapshots are disk + cache, no Postgres needed)
	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Fatal("Redis connection failed: %v", err)
	}

	// 3. Initialize Services
	gameClient := nightvale.NewClient(cfg)
	if !gameClient.HasCredentials() {
		logger.Error("⚠️ Game credentials are not configured; runs will save default payloads")
	} else if nightvale.TokenExpired(cfg.Nightvale.BearerToken, time.Now()) {
		logger.Error("⚠️ Configured bearer token is expired; refresh NIGHTVALE_BEARER_TOKEN")
	}

	snapshotService := services.NewSnapshotService(gameClient, redisClient, cfg.Server.DataDir)

	// 4. Context with Cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. Snapshot Loop
	go func() {
		ticker := time.NewTicker(cfg.Fetcher.Interval)
		defer ticker.Stop()

		runSnapshot(ctx, snapshotService)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if nightvale.TokenExpired(cfg.Nightvale.BearerToken, time.Now()) {
					logger.Error("⚠️ Bearer token expired mid-run; upstream calls will fail with 401")
				}
				runSnapshot(ctx, snapshotService)
			}
		}
	}()

	// 6. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down fetcher...")
	cancel()

	time.Sleep(1 * time.Second) // Give in-flight requests time to finish
	logger.Info("Fetcher exited.")
}

func runSnapshot(ctx context.Context, s *services.SnapshotService) {
	logger.Info("🔄 Running snapshot fetch...")
	if err := s.RunAll(ctx); err != nil {
		logger.Error("Snapshot run failed: %v", err)
	}
}
