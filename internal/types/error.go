package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is an API error carrying the HTTP status it should render with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NotFound reports a missing user/reel/comment/reward (404)
func NotFound(message string) *Error {
	return &Error{Code: fiber.StatusNotFound, Message: message}
}

// BadRequest reports invalid input or an insufficient ledger balance (400)
func BadRequest(message string) *Error {
	return &Error{Code: fiber.StatusBadRequest, Message: message}
}

// Unauthenticated reports a missing/invalid/expired credential (401)
func Unauthenticated(message string) *Error {
	return &Error{Code: fiber.StatusUnauthorized, Message: message}
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
