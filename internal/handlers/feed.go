package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FeedHandler handles home feed, profile feeds and watch history
type FeedHandler struct {
	DB *gorm.DB
}

// HomeFeed handles GET /feed/home
// @Summary Personalized home feed
// @Description Three-tier feed: followed authors, most engaged, newest; watched reels excluded
// @Tags Feed
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /feed/home [get]
func (h *FeedHandler) HomeFeed(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 50)
	reels, err := services.HomeFeed(h.DB, viewerID(c), offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reels": reels})
}

// UserReels handles GET /feed/reel/:userId
// @Summary A user's posted reels
// @Tags Feed
// @Produce json
// @Param userId path string true "User id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /feed/reel/{userId} [get]
func (h *FeedHandler) UserReels(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 10)
	reels, err := services.UserReels(h.DB, viewerID(c), c.Params("userId"), offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reelData": reels})
}

// LikedReels handles GET /feed/likedreel/:userId
// @Summary Reels a user has liked
// @Tags Feed
// @Produce json
// @Param userId path string true "User id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /feed/likedreel/{userId} [get]
func (h *FeedHandler) LikedReels(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 10)
	reels, err := services.LikedReels(h.DB, viewerID(c), c.Params("userId"), offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reelData": reels})
}

// WatchedReels handles GET /feed/watchedreel/:userId
// @Summary A user's watch history
// @Tags Feed
// @Produce json
// @Param userId path string true "User id"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Success 200 {object} map[string]interface{}
// @Router /feed/watchedreel/{userId} [get]
func (h *FeedHandler) WatchedReels(c *fiber.Ctx) error {
	offset, limit := parsePagination(c, 10)
	reels, err := services.WatchedReels(h.DB, viewerID(c), c.Params("userId"), offset, limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"reelData": reels})
}

type markWatchedRequest struct {
	ReelIDs []string `json:"reelIds"`
}

// MarkWatched handles POST /feed/markwatched
// @Summary Record watched reels
// @Description First watch of a reel bumps its view count; repeats are no-ops
// @Tags Feed
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body markWatchedRequest true "Reel ids"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /feed/markwatched [post]
func (h *FeedHandler) MarkWatched(c *fiber.Ctx) error {
	var req markWatchedRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	if err := services.MarkWatchedAll(h.DB, viewerID(c), req.ReelIDs); err != nil {
		return utils.FromError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Marked as watched")
}
