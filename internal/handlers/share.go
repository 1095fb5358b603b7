package handlers

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ShareHandler renders OpenGraph preview pages for shared links
type ShareHandler struct {
	DB      *gorm.DB
	BaseURL string
}

var shareTemplate = template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  <meta property="og:image" content="{{.Image}}">
  <meta property="og:url" content="{{.URL}}">
  <meta property="og:type" content="{{.Type}}">
  <meta name="twitter:card" content="summary_large_image">
</head>
<body>
  <p>Opening {{.Title}}…</p>
</body>
</html>
`))

type sharePage struct {
	Title       string
	Description string
	Image       string
	URL         string
	Type        string
}

// Share handles GET /share/:type/:id
// @Summary OpenGraph preview for a shared user or reel
// @Tags Share
// @Produce html
// @Param type path string true "user or reel"
// @Param id path string true "Entity id"
// @Success 200 {string} string "HTML preview page"
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /share/{type}/{id} [get]
func (h *ShareHandler) Share(c *fiber.Ctx) error {
	kind := c.Params("type")
	id := c.Params("id")

	var page sharePage
	switch kind {
	case "user":
		var user models.User
		err := h.DB.First(&user, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		if err != nil {
			return utils.FromError(c, err)
		}
		page = sharePage{
			Title:       fmt.Sprintf("%s (@%s)", user.Name, user.Username),
			Description: user.Bio,
			Image:       user.UserImage,
			URL:         fmt.Sprintf("%s/share/user/%s", h.BaseURL, user.ID),
			Type:        "profile",
		}
	case "reel":
		var reel models.Reel
		err := h.DB.Preload("User").First(&reel, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reel not found")
		}
		if err != nil {
			return utils.FromError(c, err)
		}
		page = sharePage{
			Title:       fmt.Sprintf("Reel by @%s", reel.User.Username),
			Description: reel.Caption,
			Image:       reel.ThumbURI,
			URL:         fmt.Sprintf("%s/share/reel/%s", h.BaseURL, reel.ID),
			Type:        "video.other",
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Not found")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return shareTemplate.Execute(c.Response().BodyWriter(), page)
}
