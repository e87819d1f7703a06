/**
 * @description
 * ROI API Handler.
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

type ROIHandler struct {
	Service *services.ROIService
}

func NewROIHandler(service *services.ROIService) *ROIHandler {
	return &ROIHandler{Service: service}
}

// GetStats returns the full ROI report.
// The configured strategy can be overridden with ?strategy=.
// GET /roi/stats
func (h *ROIHandler) GetStats(c *fiber.Ctx) error {
	report := h.Service.GetReport(c.Context(), c.Query("strategy"))
	return c.JSON(report)
}
