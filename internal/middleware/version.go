package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CurrentAPIVersion is assumed when a client sends no version header.
const CurrentAPIVersion = "1.0.0"

// APIVersion negotiates the X-Api-Version request header, stores the
// resolved version for handlers, and echoes it on every response so
// clients can tell which contract served them.
func APIVersion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", CurrentAPIVersion)

		// Support version aliases
		if version == "1.0" {
			version = CurrentAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
