package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gather.link/services"
)

// InviteHandler serves the public invitation page guests reach from
// the QR code or the shared link.
type InviteHandler struct {
	eventService services.IEventService
}

func NewInviteHandler() *InviteHandler {
	return &InviteHandler{eventService: services.NewEventService()}
}

func (h *InviteHandler) ShowEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Event Not Found",
		}, "layouts/main")
	}

	event, err := h.eventService.GetPublicEvent(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
				"Title": "Event Not Found",
			}, "layouts/main")
		}
		return c.Status(fiber.StatusInternalServerError).Render("errors/404", fiber.Map{
			"Title": "Something Went Wrong",
		}, "layouts/main")
	}

	return c.Render("event/show", fiber.Map{
		"Title": event.Title,
		"Event": event.PublicView(),
	}, "layouts/main")
}
