/**
 * @description
 * Price API Handlers.
 * Exposes the cached gold token price, the composite NFT floor price,
 * and a live SSE stream of price updates.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 */

package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/dungeon-tracker/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PriceHandler struct {
	Service *services.PriceService
}

func NewPriceHandler(service *services.PriceService) *PriceHandler {
	return &PriceHandler{Service: service}
}

// GetGoldPrice returns the current gold token price
// GET /gold/price
func (h *PriceHandler) GetGoldPrice(c *fiber.Ctx) error {
	quote := h.Service.GetGoldQuote(c.Context())
	return c.JSON(quote)
}

// GetNFTPrice returns the NFT floor price in USD
// GET /nft/price
func (h *PriceHandler) GetNFTPrice(c *fiber.Ctx) error {
	quote, err := h.Service.GetNFTQuote(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrPriceUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "NFT price is currently unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch NFT price",
		})
	}
	return c.JSON(quote)
}

// StreamPrices streams live price updates over SSE
// GET /prices/stream
func (h *PriceHandler) StreamPrices(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	requestCtx := c.Context()

	ctx, cancel := context.WithCancel(context.Background())

	pubsub := h.Service.Redis.Subscribe(ctx, services.PriceUpdateChannel)
	ch := pubsub.Channel()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer func() {
			cancel()
			_ = pubsub.Close()
		}()

		requestDone := requestCtx.Done()

		for {
			select {
			case <-requestDone:
				return
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})

	return nil
}
