package handlers

import (
	"errors"

	"gather.link/configs/configslog"
	"gather.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler serves the public RSVP endpoint.
type RSVPHandler struct {
	rsvpService services.IRSVPService
}

func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{rsvpService: services.NewRSVPService()}
}

// Submit (POST /events/:id/rsvp) records a guest response. The response is
// 201 with the guest record whether the guest was created or updated; the
// seating sub-step never affects the status code.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input services.RSVPInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	guest, err := h.rsvpService.SubmitRSVP(c.UserContext(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRSVPEventNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrRSVPEventInactive),
			errors.Is(err, services.ErrRSVPNameRequired),
			errors.Is(err, services.ErrRSVPInvalidStatus),
			errors.Is(err, services.ErrRSVPInvalidEmail):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		configslog.Log.Error("rsvp failed", zap.Uint("eventID", id), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(guest)
}
