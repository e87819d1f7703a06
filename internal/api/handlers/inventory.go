/**
 * @description
 * Inventory and market analysis API Handlers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - gorm.io/gorm
 * - backend/internal/services
 */

package handlers

import (
	"github.com/dungeon-tracker/backend/internal/models"
	"github.com/dungeon-tracker/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	DB       *gorm.DB
	Analysis *services.AnalysisService
}

func NewInventoryHandler(db *gorm.DB, analysis *services.AnalysisService) *InventoryHandler {
	return &InventoryHandler{DB: db, Analysis: analysis}
}

// ListInventory returns all owned items, most valuable first
// GET /inventory
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	var items []models.InventoryItem
	if err := h.DB.WithContext(c.Context()).Order("current_price DESC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch inventory",
		})
	}
	return c.JSON(items)
}

// GetMarketAnalysis returns SELL/HOLD recommendations and the gold trend
// GET /market/analysis
func (h *InventoryHandler) GetMarketAnalysis(c *fiber.Ctx) error {
	return c.JSON(h.Analysis.GetAnalysis(c.Context()))
}
