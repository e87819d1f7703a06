/**
 * @description
 * Main entry point for the Dungeon Tracker API.
 * Initializes the Fiber web server, loads configuration, connects to
 * Postgres and Redis, migrates and seeds the schema, and sets up routes.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2: Web framework
 * - backend/internal/config: Config loader
 * - backend/internal/db: Database connections
 * - backend/internal/api: Route definitions
 *
 * @notes
 * - CORS is restricted to the configured frontend origin.
 */

package main

import (
	"log"

	"github.com/dungeon-tracker/backend/internal/api"
	"github.com/dungeon-tracker/backend/internal/api/middleware"
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize Database Connections
	pgDB, err := db.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if err := db.Migrate(pgDB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	if err := db.SeedBaseLoot(pgDB); err != nil {
		log.Fatalf("Failed to seed base loot prices: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// 3. Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:       "Dungeon Tracker",
		StrictRouting: true,
		CaseSensitive: true,
	})

	// 4. Global Middleware
	app.Use(recover.New()) // Panic recovery
	app.Use(logger.New())  // Request logging
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-selected-wallet-address",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.SecurityHeaders())

	// 5. Routes
	api.SetupRoutes(app, pgDB, redisClient, cfg)

	// 6. Start Server
	log.Printf("🚀 Starting Dungeon Tracker API on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
