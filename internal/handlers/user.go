package handlers

import (
	"errors"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles profile and follow graph routes
type UserHandler struct {
	DB *gorm.DB
}

// GetOwnProfile handles GET /user/profile
// @Summary Get the caller's profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Profile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /user/profile [get]
func (h *UserHandler) GetOwnProfile(c *fiber.Ctx) error {
	userID := viewerID(c)
	profile, err := services.GetProfile(h.DB, userID, userID)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpdateProfile handles PATCH /user/profile
// @Summary Update the caller's profile
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProfileUpdate true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /user/profile [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req services.ProfileUpdate
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body request")
	}
	user, err := services.UpdateProfile(h.DB, viewerID(c), req)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetProfileByUsername handles GET /user/profile/:username
// @Summary Get a profile by username
// @Tags User
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} services.Profile
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /user/profile/{username} [get]
func (h *UserHandler) GetProfileByUsername(c *fiber.Ctx) error {
	var user models.User
	err := h.DB.Select("id").First(&user, "username = ?", c.Params("username")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return utils.FromError(c, err)
	}
	profile, err := services.GetProfile(h.DB, viewerID(c), user.ID)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// ToggleFollow handles PUT /user/follow/:userId
// @Summary Follow or unfollow a user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User to toggle"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /user/follow/{userId} [put]
func (h *UserHandler) ToggleFollow(c *fiber.Ctx) error {
	following, err := services.ToggleFollow(h.DB, viewerID(c), c.Params("userId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /user/followers/:userId
// @Summary List a user's followers
// @Tags User
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Router /user/followers/{userId} [get]
func (h *UserHandler) GetFollowers(c *fiber.Ctx) error {
	ids, err := services.FollowerIDs(h.DB, c.Params("userId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return h.userSummaries(c, ids)
}

// GetFollowing handles GET /user/following/:userId
// @Summary List who a user follows
// @Tags User
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Router /user/following/{userId} [get]
func (h *UserHandler) GetFollowing(c *fiber.Ctx) error {
	ids, err := services.FollowingIDs(h.DB, c.Params("userId"))
	if err != nil {
		return utils.FromError(c, err)
	}
	return h.userSummaries(c, ids)
}

func (h *UserHandler) userSummaries(c *fiber.Ctx, ids []string) error {
	summaries := []services.AuthorSummary{}
	if len(ids) > 0 {
		var users []models.User
		if err := h.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
			return utils.FromError(c, err)
		}
		following, err := services.FollowingIDs(h.DB, viewerID(c))
		if err != nil {
			return utils.FromError(c, err)
		}
		followed := make(map[string]bool, len(following))
		for _, id := range following {
			followed[id] = true
		}
		for _, u := range users {
			summaries = append(summaries, services.AuthorSummary{
				ID:          u.ID,
				Username:    u.Username,
				Name:        u.Name,
				UserImage:   u.UserImage,
				IsFollowing: followed[u.ID],
			})
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": summaries})
}

// Search handles GET /user/search?q=
// @Summary Search users by username or name
// @Tags User
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} map[string]interface{}
// @Router /user/search [get]
func (h *UserHandler) Search(c *fiber.Ctx) error {
	_, limit := parsePagination(c, 20)
	users, err := services.SearchUsers(h.DB, viewerID(c), c.Query("q"), limit)
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}
