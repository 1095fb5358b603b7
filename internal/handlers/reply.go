package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReplyHandler handles reply routes
type ReplyHandler struct {
	DB *gorm.DB
}

// List handles GET /reply?commentId=
// @Summary Replies under a comment, oldest first
// @Tags Reply
// @Produce json
// @Security BearerAuth
// @Param commentId query string true "Comment id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reply [get]
func (h *ReplyHandler) List(c *fiber.Ctx) error {
	commentID := c.Query("commentId")
	if commentID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "commentId is required")
	}
	offset, limit := parsePagination(c, 10)
	replies, err := services.ListReplies(h.DB, viewerID(c), commentID, offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"replies": replies})
}

type createReplyRequest struct {
	CommentID string `json:"commentId"`
	services.ReplyInput
}

// Create handles POST /reply
// @Summary Post a reply under a comment
// @Description Accrues tokens to the replier and rupees to the reel's creator
// @Tags Reply
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createReplyRequest true "Reply payload"
// @Success 201 {object} models.Reply
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reply [post]
func (h *ReplyHandler) Create(c *fiber.Ctx) error {
	var req createReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	reply, err := services.CreateReply(h.DB, viewerID(c), req.CommentID, req.ReplyInput)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// Delete handles DELETE /reply/:replyId
// @Summary Delete a reply and its likes
// @Tags Reply
// @Produce json
// @Security BearerAuth
// @Param replyId path string true "Reply id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reply/{replyId} [delete]
func (h *ReplyHandler) Delete(c *fiber.Ctx) error {
	if err := services.DeleteReply(h.DB, viewerID(c), c.Params("replyId")); err != nil {
		return utils.FromError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Reply deleted")
}
