/**
 * @description
 * Game credential API Handler.
 * Hands the configured game credentials to the frontend so it can call
 * the proxy with explicit headers.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/config
 */

package handlers

import (
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{Config: cfg}
}

// GetCredentials returns the configured game token and wallet address
// GET /auth/credentials
func (h *AuthHandler) GetCredentials(c *fiber.Ctx) error {
	token := h.Config.Nightvale.BearerToken
	wallet := h.Config.Nightvale.WalletAddress

	if token == "" || wallet == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server configuration error: Missing environment variables",
		})
	}

	return c.JSON(fiber.Map{
		"token":         token,
		"walletAddress": wallet,
	})
}
