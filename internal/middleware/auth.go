package middleware

import (
	"strings"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the Bearer access token and stores the caller's
// user id in locals under "userID".
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			err := types.Unauthenticated("Authentication invalid")
			return utils.ErrorResponse(c, err.Code, err.Message)
		}
		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := services.ParseAccessToken(cfg, token)
		if err != nil {
			return utils.FromError(c, err)
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// OptionalAuth stores the caller's user id when a valid token is
// present and passes anonymous requests through untouched.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if userID, err := services.ParseAccessToken(cfg, token); err == nil {
				c.Locals("userID", userID)
			}
		}
		return c.Next()
	}
}
