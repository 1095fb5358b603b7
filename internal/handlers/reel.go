package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReelHandler handles reel CRUD routes
type ReelHandler struct {
	DB *gorm.DB
}

// Create handles POST /reel
// @Summary Post a new reel
// @Tags Reel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ReelInput true "Reel payload"
// @Success 201 {object} models.Reel
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reel [post]
func (h *ReelHandler) Create(c *fiber.Ctx) error {
	var req services.ReelInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	reel, err := services.CreateReel(h.DB, viewerID(c), req)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reel)
}

// Get handles GET /reel/:reelId
// @Summary Get a reel with engagement
// @Tags Reel
// @Produce json
// @Param reelId path string true "Reel id"
// @Success 200 {object} services.FeedReel
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reel/{reelId} [get]
func (h *ReelHandler) Get(c *fiber.Ctx) error {
	reel, err := services.GetReel(h.DB, viewerID(c), c.Params("reelId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reel)
}

type captionRequest struct {
	Caption string `json:"caption"`
}

// UpdateCaption handles PATCH /reel/:reelId/caption
// @Summary Edit a reel's caption
// @Tags Reel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reelId path string true "Reel id"
// @Param body body captionRequest true "New caption"
// @Success 200 {object} models.Reel
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reel/{reelId}/caption [patch]
func (h *ReelHandler) UpdateCaption(c *fiber.Ctx) error {
	var req captionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	reel, err := services.UpdateCaption(h.DB, viewerID(c), c.Params("reelId"), req.Caption)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reel)
}

// Delete handles DELETE /reel/:reelId
// @Summary Delete a reel and its engagement
// @Tags Reel
// @Produce json
// @Security BearerAuth
// @Param reelId path string true "Reel id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reel/{reelId} [delete]
func (h *ReelHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteReel(h.DB, viewerID(c), c.Params("reelId")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Reel deleted")
}
