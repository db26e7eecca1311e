package handlers

import (
	"path/filepath"

	"gather.link/configs/configslog"
	"gather.link/services"
	"gather.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadDir = "./uploads"

// PhotoHandler serves owner-only photo uploads.
type PhotoHandler struct {
	photoService services.IPhotoService
}

func NewPhotoHandler() *PhotoHandler {
	return &PhotoHandler{photoService: services.NewPhotoService()}
}

// Upload (POST /events/:id/photos) stores a multipart photo and records it.
// The stored name is a fresh UUID to keep uploads from colliding.
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo file is required")
	}

	storedName := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(uploadDir, storedName)); err != nil {
		configslog.Log.Error("photo save failed", zap.Uint("eventID", id), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	photo, err := h.photoService.AddPhoto(c.UserContext(), id, adminID, services.PhotoInput{
		Filename: file.Filename,
		URL:      "/uploads/" + storedName,
		Caption:  c.FormValue("caption"),
	})
	if err != nil {
		return mapEventError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}
