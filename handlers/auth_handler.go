package handlers

import (
	"errors"

	"gather.link/configs/configslog"
	"gather.link/services"
	"gather.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler manages admin sessions.
type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login (POST /auth/login) verifies credentials and opens a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, err.Error())
		}
		configslog.Log.Error("login failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("session start failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	sess.Set(utils.SessionUserIDKey, user.ID)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("session save failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(fiber.Map{"id": user.ID, "name": user.Name, "email": user.Email})
}

// Logout (POST /auth/logout) destroys the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
