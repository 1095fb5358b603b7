package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LikeHandler handles like toggles and liker listings
type LikeHandler struct {
	DB *gorm.DB
}

// ToggleReel handles POST /like/reel/:reelId
// @Summary Like or unlike a reel
// @Description A new like accrues tokens to the liker
// @Tags Like
// @Produce json
// @Security BearerAuth
// @Param reelId path string true "Reel id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /like/reel/{reelId} [post]
func (h *LikeHandler) ToggleReel(c *fiber.Ctx) error {
	liked, err := services.ToggleReelLike(h.DB, viewerID(c), c.Params("reelId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": liked})
}

// ToggleComment handles POST /like/comment/:commentId
// @Summary Like or unlike a comment
// @Tags Like
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /like/comment/{commentId} [post]
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	liked, err := services.ToggleCommentLike(h.DB, viewerID(c), c.Params("commentId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": liked})
}

// ToggleReply handles POST /like/reply/:replyId
// @Summary Like or unlike a reply
// @Tags Like
// @Produce json
// @Security BearerAuth
// @Param replyId path string true "Reply id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /like/reply/{replyId} [post]
func (h *LikeHandler) ToggleReply(c *fiber.Ctx) error {
	liked, err := services.ToggleReplyLike(h.DB, viewerID(c), c.Params("replyId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"isLiked": liked})
}

// List handles GET /like?type=&entityId=
// @Summary Users who liked an entity, followed users first
// @Tags Like
// @Produce json
// @Security BearerAuth
// @Param type query string true "reel, comment or reply"
// @Param entityId query string true "Target entity id"
// @Param searchQuery query string false "Filter by username or name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /like [get]
func (h *LikeHandler) List(c *fiber.Ctx) error {
	targetType := c.Query("type")
	entityID := c.Query("entityId")
	switch targetType {
	case models.TargetReel, models.TargetComment, models.TargetReply:
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid type")
	}
	if entityID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "entityId is required")
	}

	page := parseNonNegative(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseNonNegative(c.Query("limit"), 20)

	likers, err := services.ListLikes(h.DB, viewerID(c), targetType, entityID,
		c.Query("searchQuery"), (page-1)*limit, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": likers})
}
