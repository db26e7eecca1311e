package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gather.link/pkg/giftgen"
	"gather.link/services"
)

type IdeaHandler struct {
	ideaService services.IIdeaService
}

func NewIdeaHandler(svc services.IIdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: svc}
}

func (h *IdeaHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *IdeaHandler) Offline(c *fiber.Ctx) error {
	lang := c.Query("lang", "ru")
	return c.JSON(h.ideaService.Offline(lang))
}

func (h *IdeaHandler) Generate(c *fiber.Ctx) error {
	var req giftgen.Request
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.ideaService.Generate(c.Context(), c.IP(), req)
	if err != nil {
		if errors.Is(err, services.ErrIdeaRateLimited) {
			return apiError(c, fiber.StatusTooManyRequests, string(services.ErrIdeaRateLimited))
		}
		var verr *giftgen.ValidationError
		if errors.As(err, &verr) {
			return apiError(c, fiber.StatusBadRequest, verr.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to generate ideas")
	}

	return c.JSON(result)
}
