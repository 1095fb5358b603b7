package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles sign-up, sign-in and token refresh
type AuthHandler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Verifier services.IdentityVerifier
}

type checkUsernameRequest struct {
	Username string `json:"username"`
}

// CheckUsername handles POST /auth/check-username
// @Summary Check username availability
// @Description Check whether a username is valid and not yet taken
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body checkUsernameRequest true "Username to check"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/check-username [post]
func (h *AuthHandler) CheckUsername(c *fiber.Ctx) error {
	var req checkUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	available, err := services.CheckUsernameAvailable(h.DB, req.Username)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"available": available})
}

// Signup handles POST /auth/signup
// @Summary Register with an OAuth id token
// @Description Verify a google/facebook id token, create the account and its reward ledger
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Registration payload"
// @Success 201 {object} services.AuthResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req services.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	result, err := services.Signup(c.Context(), h.DB, h.Cfg, h.Verifier, req)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Signin handles POST /auth/signin
// @Summary Sign in with an OAuth id token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SigninInput true "Login payload"
// @Success 200 {object} services.AuthResult
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req services.SigninInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	result, err := services.Signin(c.Context(), h.DB, h.Cfg, h.Verifier, req)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /auth/refresh-token
// @Summary Rotate a refresh token into a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body refreshRequest true "Refresh token"
// @Success 200 {object} services.TokenPair
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	tokens, err := services.RefreshTokens(h.DB, h.Cfg, req.RefreshToken)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tokens)
}
