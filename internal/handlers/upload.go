package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/storage"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles media uploads
type UploadHandler struct {
	Store storage.MediaStore
}

// Upload handles POST /file/upload
// @Summary Upload a media file
// @Description Stores the file under the folder for its mediaType and returns the public URL
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Media file"
// @Param mediaType formData string true "user_image, reel_thumbnail or reel_video"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /file/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required")
	}
	folder, err := storage.FolderFor(c.FormValue("mediaType"))
	if err != nil {
		return utils.FromError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return utils.FromError(c, err)
	}
	defer src.Close()

	url, err := h.Store.Save(c.Context(), src, folder, file.Filename,
		file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return utils.FromError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"mediaUrl": url})
}
