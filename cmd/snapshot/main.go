package main

import (
	"context"
	"log"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/nightvale"
	"github.com/dungeon-tracker/backend/internal/services"
	"github.com/redis/go-redis/v9"
)

// One-shot snapshot run for local use and cron jobs. Uses an in-memory
// Redis so no infrastructure beyond the data directory is required.
func main() {
	log.Println("🚀 Starting manual snapshot fetch...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		log.Fatalf("failed to start in-memory redis: %v", err)
	}
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	gameClient := nightvale.NewClient(cfg)
	service := services.NewSnapshotService(gameClient, redisClient, cfg.Server.DataDir)

	if err := service.RunAll(context.Background()); err != nil {
		log.Fatalf("snapshot fetch failed: %v", err)
	}

	log.Println("✅ Manual snapshot fetch completed successfully.")
}
