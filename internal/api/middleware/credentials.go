/**
 * @description
 * Game credential resolution for proxied requests.
 * A proxied call needs a bearer token and a wallet address. Headers sent
 * by the client take precedence; the server-side configured credentials
 * are the fallback for local single-user deployments.
 *
 * Resolved values are stashed in request locals for the proxy handler.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/config
 */

package middleware

import (
	"github.com/dungeon-tracker/backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

const (
	// LocalGameToken and LocalGameWallet are the locals keys the proxy reads
	LocalGameToken  = "game_token"
	LocalGameWallet = "game_wallet"

	walletHeader = "x-selected-wallet-address"
)

// GameCredentials resolves the credentials a proxied request will use.
// Rejects with 401 when no token can be resolved at all.
func GameCredentials(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			token = cfg.Nightvale.BearerToken
		}
		wallet := c.Get(walletHeader)
		if wallet == "" {
			wallet = cfg.Nightvale.WalletAddress
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Missing Authorization header",
				"message": "Please provide a valid Bearer token",
			})
		}

		c.Locals(LocalGameToken, token)
		c.Locals(LocalGameWallet, wallet)
		return c.Next()
	}
}
