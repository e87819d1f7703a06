/**
 * @description
 * Reverse proxy to the game production API.
 * Relays any method and path under /proxy/* with the credentials resolved
 * by the middleware, passing the upstream status and body through
 * verbatim. The upstream schema stays opaque.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/nightvale
 */

package handlers

import (
	"net/url"

	"github.com/dungeon-tracker/backend/internal/api/middleware"
	"github.com/dungeon-tracker/backend/internal/logger"
	"github.com/dungeon-tracker/backend/internal/nightvale"
	"github.com/gofiber/fiber/v2"
)

type ProxyHandler struct {
	Client *nightvale.Client
}

func NewProxyHandler(client *nightvale.Client) *ProxyHandler {
	return &ProxyHandler{Client: client}
}

// Forward relays the request to the game API
// ALL /proxy/*
func (h *ProxyHandler) Forward(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.LocalGameToken).(string)
	wallet, _ := c.Locals(middleware.LocalGameWallet).(string)

	path := c.Params("*")

	query := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		query.Add(string(key), string(value))
	})

	result, err := h.Client.Forward(c.Context(), c.Method(), "/"+path, query, c.Body(), token, wallet)
	if err != nil {
		logger.Error("Proxy error for %s %s: %v", c.Method(), path, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Failed to connect to game server",
		})
	}

	if result.ContentType != "" {
		c.Set(fiber.HeaderContentType, result.ContentType)
	}
	return c.Status(result.StatusCode).Send(result.Body)
}
