package utils

import (
	"errors"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the standard error body {"error": message}
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// FromError renders an error with its mapped HTTP status. Unclassified
// errors are hidden behind a generic server fault.
func FromError(c *fiber.Ctx, err error) error {
	status := types.StatusOf(err)
	message := "Internal Server Error"

	var apiErr *types.Error
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}

	return ErrorResponse(c, status, message)
}

// MessageResponse sends {"message": message} with the given status
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// MessageResponseStruct defines the schema for message responses
type MessageResponseStruct struct {
	Message string `json:"message"`
}
