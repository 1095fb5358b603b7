package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommentHandler handles comment routes
type CommentHandler struct {
	DB *gorm.DB
}

// List handles GET /comment?reelId=
// @Summary Ranked comments for a reel
// @Description Pinned first, then author-liked, viewer-replied, like count, followed authors, recency
// @Tags Comment
// @Produce json
// @Security BearerAuth
// @Param reelId query string true "Reel id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /comment [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	reelID := c.Query("reelId")
	if reelID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "reelId is required")
	}
	offset, limit := parsePagination(c, 10)
	comments, err := services.ListComments(h.DB, viewerID(c), reelID, offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"comments": comments})
}

type createCommentRequest struct {
	ReelID string `json:"reelId"`
	services.CommentInput
}

// Create handles POST /comment
// @Summary Post a comment on a reel
// @Description Accrues tokens to the commenter and rupees to the reel's creator
// @Tags Comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createCommentRequest true "Comment payload"
// @Success 201 {object} models.Comment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comment [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	comment, err := services.CreateComment(h.DB, viewerID(c), req.ReelID, req.CommentInput)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

type pinRequest struct {
	CommentID string `json:"commentId"`
}

// TogglePin handles POST /comment/pin
// @Summary Pin or unpin a comment (reel owner only)
// @Tags Comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body pinRequest true "Comment to toggle"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comment/pin [post]
func (h *CommentHandler) TogglePin(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	pinned, err := services.TogglePin(h.DB, viewerID(c), req.CommentID)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isPinned": pinned})
}

// Delete handles DELETE /comment/:commentId
// @Summary Delete a comment with its replies and likes
// @Tags Comment
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comment/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteComment(h.DB, viewerID(c), c.Params("commentId")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Comment deleted")
}
