/**
 * @description
 * Gold earnings API Handlers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 */

package handlers

import (
	"github.com/dungeon-tracker/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EarningsHandler struct {
	Service *services.EarningsService
}

func NewEarningsHandler(service *services.EarningsService) *EarningsHandler {
	return &EarningsHandler{Service: service}
}

// ListEarnings returns all gold earnings, newest date first
// GET /gold/earnings
func (h *EarningsHandler) ListEarnings(c *fiber.Ctx) error {
	return c.JSON(h.Service.List(c.Context()))
}

type addEarningRequest struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

// AddEarning appends a gold earning entry
// POST /gold/earnings
func (h *EarningsHandler) AddEarning(c *fiber.Ctx) error {
	var req addEarningRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.Service.Add(c.Context(), req.Date, req.Amount, req.Source)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
