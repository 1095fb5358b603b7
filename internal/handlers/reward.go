package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RewardHandler handles the token/rupee ledger routes
type RewardHandler struct {
	DB *gorm.DB
}

// Get handles GET /reward
// @Summary Get the caller's reward balances
// @Tags Reward
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Reward
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reward [get]
func (h *RewardHandler) Get(c *fiber.Ctx) error {
	reward, err := services.GetReward(h.DB, viewerID(c))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reward)
}

type redeemRequest struct {
	TokensToRedeem float64 `json:"tokensToRedeem"`
}

// Redeem handles POST /reward/redeem
// @Summary Redeem tokens
// @Description All-or-nothing debit; insufficient balance leaves the ledger unchanged
// @Tags Reward
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body redeemRequest true "Amount to redeem"
// @Success 200 {object} models.Reward
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reward/redeem [post]
func (h *RewardHandler) Redeem(c *fiber.Ctx) error {
	var req redeemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	reward, err := services.RedeemTokens(h.DB, viewerID(c), req.TokensToRedeem)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reward)
}

type withdrawRequest struct {
	RupeesToWithdraw float64 `json:"rupeesToWithdraw"`
}

// Withdraw handles POST /reward/withdraw
// @Summary Withdraw rupees
// @Tags Reward
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body withdrawRequest true "Amount to withdraw"
// @Success 200 {object} models.Reward
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reward/withdraw [post]
func (h *RewardHandler) Withdraw(c *fiber.Ctx) error {
	var req withdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	reward, err := services.WithdrawRupees(h.DB, viewerID(c), req.RupeesToWithdraw)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reward)
}
