package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// viewerID returns the authenticated caller's user id, or "" for
// anonymous requests.
func viewerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

// parsePagination reads offset/limit query params. Malformed or
// negative values fall back to the defaults.
func parsePagination(c *fiber.Ctx, defaultLimit int) (offset, limit int) {
	offset = parseNonNegative(c.Query("offset"), 0)
	limit = parseNonNegative(c.Query("limit"), defaultLimit)
	return offset, limit
}

func parseNonNegative(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
