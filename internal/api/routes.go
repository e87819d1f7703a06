/**
 * @description
 * API Route definitions.
 * Sets up the router groups and assigns handlers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/api/handlers
 * - backend/internal/api/middleware
 * - backend/internal/services
 */

package api

import (
	"github.com/dungeon-tracker/backend/internal/api/handlers"
	"github.com/dungeon-tracker/backend/internal/api/middleware"
	"github.com/dungeon-tracker/backend/internal/birdeye"
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/dungeon-tracker/backend/internal/magiceden"
	"github.com/dungeon-tracker/backend/internal/nightvale"
	"github.com/dungeon-tracker/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// 1. Initialize Clients
	birdeyeClient := birdeye.NewClient(cfg)
	magicEdenClient := magiceden.NewClient(cfg)
	gameClient := nightvale.NewClient(cfg)

	// 2. Initialize Services
	priceService := services.NewPriceService(db, rdb, birdeyeClient, magicEdenClient, cfg, nil)
	earningsService := services.NewEarningsService(db)
	roiService := services.NewROIService(db, priceService, cfg.ROI.TotalInvestment, services.ParseStrategy(cfg.ROI.Strategy))
	analysisService := services.NewAnalysisService(db, priceService)

	// 3. Initialize Handlers
	priceHandler := handlers.NewPriceHandler(priceService)
	earningsHandler := handlers.NewEarningsHandler(earningsService)
	roiHandler := handlers.NewROIHandler(roiService)
	inventoryHandler := handlers.NewInventoryHandler(db, analysisService)
	proxyHandler := handlers.NewProxyHandler(gameClient)
	authHandler := handlers.NewAuthHandler(cfg)
	dataHandler := handlers.NewDataHandler(cfg.Server.DataDir)

	// 4. Define Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/gold/price", priceHandler.GetGoldPrice)
	app.Get("/nft/price", priceHandler.GetNFTPrice)
	app.Get("/prices/stream", priceHandler.StreamPrices)

	app.Get("/gold/earnings", earningsHandler.ListEarnings)
	app.Post("/gold/earnings", earningsHandler.AddEarning)

	app.Get("/roi/stats", roiHandler.GetStats)

	app.Get("/inventory", inventoryHandler.ListInventory)
	app.Get("/market/analysis", inventoryHandler.GetMarketAnalysis)

	app.Get("/auth/credentials", authHandler.GetCredentials)
	app.All("/proxy/*", middleware.GameCredentials(cfg), proxyHandler.Forward)

	app.Get("/data/:filename", dataHandler.ServeFile)
}
