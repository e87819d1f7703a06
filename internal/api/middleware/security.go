/**
 * @description
 * Response security headers applied to every route.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 */

package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SecurityHeaders sets the standard browser hardening headers
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		return c.Next()
	}
}
