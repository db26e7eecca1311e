package handlers

import (
	"errors"
	"strconv"

	"gather.link/configs/configslog"
	"gather.link/services"
	"gather.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler serves the event CRUD, export and QR endpoints.
type EventHandler struct {
	eventService  services.IEventService
	exportService services.IExportService
	inviteService services.IInviteService
}

func NewEventHandler(baseURL string) *EventHandler {
	return &EventHandler{
		eventService:  services.NewEventService(),
		exportService: services.NewExportService(),
		inviteService: services.NewInviteService(baseURL),
	}
}

func eventIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid event id")
	}
	return uint(id), nil
}

// Create (POST /events) — authenticated admins only.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.eventService.CreateEvent(c.UserContext(), adminID, input)
	if err != nil {
		var serviceErr services.EventServiceError
		if errors.As(err, &serviceErr) {
			return apiError(c, fiber.StatusBadRequest, serviceErr.Error())
		}
		configslog.Log.Error("event creation failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// List (GET /events) — with ?adminId=X an admin's events with guest counts,
// otherwise the public active events with the reduced field set.
func (h *EventHandler) List(c *fiber.Ctx) error {
	if adminIDRaw := c.Query("adminId"); adminIDRaw != "" {
		adminID, err := strconv.ParseUint(adminIDRaw, 10, 32)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid adminId")
		}
		events, err := h.eventService.ListEventsForAdmin(c.UserContext(), uint(adminID))
		if err != nil {
			configslog.Log.Error("admin event listing failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(events)
	}

	events, err := h.eventService.ListActiveEvents(c.UserContext())
	if err != nil {
		configslog.Log.Error("event listing failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	views := make([]interface{}, 0, len(events))
	for i := range events {
		views = append(views, events[i].PublicView())
	}
	return c.JSON(views)
}

// Get (GET /events/:id) — owners receive the full graph, anonymous callers
// the public view, other authenticated admins a 403.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		event, err := h.eventService.GetPublicEvent(c.UserContext(), id)
		if err != nil {
			return mapEventError(c, err)
		}
		return c.JSON(event.PublicView())
	}

	event, err := h.eventService.GetEventForAdmin(c.UserContext(), id, adminID)
	if err != nil {
		return mapEventError(c, err)
	}
	return c.JSON(event)
}

// Update (PUT /events/:id) — owner only.
func (h *EventHandler) Update(c *fiber.Ctx) error {
	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var input services.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.eventService.UpdateEvent(c.UserContext(), id, adminID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrEventForbidden):
			return apiError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrEventTitleRequired), errors.Is(err, services.ErrEventInvalidInput):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		configslog.Log.Error("event update failed", zap.Uint("id", id), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(event)
}

// Delete (DELETE /events/:id) — owner only.
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.eventService.DeleteEvent(c.UserContext(), id, adminID); err != nil {
		return mapEventError(c, err)
	}
	return c.JSON(fiber.Map{"message": "event deleted"})
}

// Export (GET /events/:id/export) — owner-only CSV download.
func (h *EventHandler) Export(c *fiber.Ctx) error {
	adminID := utils.CurrentUserID(c)
	if adminID == 0 {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	data, filename, err := h.exportService.ExportGuests(c.UserContext(), id, adminID)
	if err != nil {
		return mapEventError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// QR (GET /events/:id/qr) — public QR invite.
func (h *EventHandler) QR(c *fiber.Ctx) error {
	id, err := eventIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	invite, err := h.inviteService.BuildInvite(c.UserContext(), id)
	if err != nil {
		return mapEventError(c, err)
	}
	return c.JSON(invite)
}

func mapEventError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEventNotFound):
		return apiError(c, fiber.StatusNotFound, services.ErrEventNotFound.Error())
	case errors.Is(err, services.ErrEventForbidden):
		return apiError(c, fiber.StatusForbidden, services.ErrEventForbidden.Error())
	}
	configslog.Log.Error("event request failed", zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}
