package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gather.link/configs/configslog"
	"gather.link/models"
	"gather.link/repositories"

	"go.uber.org/zap"
)

// EventServiceError is a typed service error.
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventNotFound      EventServiceError = "event not found"
	ErrEventForbidden     EventServiceError = "not the owner of this event"
	ErrEventInvalidInput  EventServiceError = "invalid event data"
	ErrEventTitleRequired EventServiceError = "title is required"
	ErrEventDateRequired  EventServiceError = "date is required"
)

// CreateEventInput carries the creation payload. Zero capacity fields fall
// back to the documented defaults (100 guests, tables of 10).
type CreateEventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	MaxGuests   int       `json:"maxGuests"`
	TableSize   int       `json:"tableSize"`
}

// UpdateEventInput is a partial update: nil fields stay untouched.
type UpdateEventInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	MaxGuests   *int       `json:"maxGuests"`
	TableSize   *int       `json:"tableSize"`
	IsActive    *bool      `json:"isActive"`
}

// IEventService manages events on behalf of admins and public viewers.
type IEventService interface {
	CreateEvent(ctx context.Context, adminID uint, input CreateEventInput) (*models.Event, error)
	GetEventForAdmin(ctx context.Context, id, adminID uint) (*models.Event, error)
	GetPublicEvent(ctx context.Context, id uint) (*models.Event, error)
	ListActiveEvents(ctx context.Context) ([]models.Event, error)
	ListEventsForAdmin(ctx context.Context, adminID uint) ([]repositories.EventWithGuestCount, error)
	UpdateEvent(ctx context.Context, id, adminID uint, input UpdateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id, adminID uint) error
}

type EventService struct {
	events repositories.IEventRepository
	photos repositories.IPhotoRepository
}

func NewEventService() IEventService {
	return &EventService{
		events: repositories.NewEventRepository(),
		photos: repositories.NewPhotoRepository(),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, adminID uint, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEventTitleRequired
	}
	if input.Date.IsZero() {
		return nil, ErrEventDateRequired
	}
	if input.MaxGuests < 0 || input.TableSize < 0 {
		return nil, ErrEventInvalidInput
	}
	if input.MaxGuests == 0 {
		input.MaxGuests = 100
	}
	if input.TableSize == 0 {
		input.TableSize = 10
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		MaxGuests:   input.MaxGuests,
		TableSize:   input.TableSize,
		IsActive:    true,
		AdminID:     adminID,
	}
	if err := s.events.Create(ctx, &event); err != nil {
		configslog.Log.Error("event creation failed", zap.Uint("adminID", adminID), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("event created: id=%d title=%q admin=%d", event.ID, event.Title, adminID)
	return &event, nil
}

// GetEventForAdmin returns the full event graph to its owner.
func (s *EventService) GetEventForAdmin(ctx context.Context, id, adminID uint) (*models.Event, error) {
	event, err := s.events.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.AdminID != adminID {
		return nil, ErrEventForbidden
	}
	return event, nil
}

// GetPublicEvent returns the event with photos loaded; callers project it
// down to the public view.
func (s *EventService) GetPublicEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	photos, err := s.photos.FindByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Photos = photos
	return event, nil
}

func (s *EventService) ListActiveEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.FindActive(ctx)
}

func (s *EventService) ListEventsForAdmin(ctx context.Context, adminID uint) ([]repositories.EventWithGuestCount, error) {
	return s.events.FindByAdminID(ctx, adminID)
}

func (s *EventService) UpdateEvent(ctx context.Context, id, adminID uint, input UpdateEventInput) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.AdminID != adminID {
		return nil, ErrEventForbidden
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrEventTitleRequired
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.MaxGuests != nil {
		if *input.MaxGuests < 1 {
			return nil, ErrEventInvalidInput
		}
		fields["max_guests"] = *input.MaxGuests
	}
	if input.TableSize != nil {
		if *input.TableSize < 1 {
			return nil, ErrEventInvalidInput
		}
		fields["table_size"] = *input.TableSize
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) > 0 {
		if err := s.events.Update(ctx, event, fields); err != nil {
			configslog.Log.Error("event update failed", zap.Uint("id", id), zap.Error(err))
			return nil, err
		}
	}
	return s.events.FindByID(ctx, id)
}

func (s *EventService) DeleteEvent(ctx context.Context, id, adminID uint) error {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if event.AdminID != adminID {
		return ErrEventForbidden
	}
	if err := s.events.Delete(ctx, event); err != nil {
		configslog.Log.Error("event deletion failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("event deleted: id=%d admin=%d", id, adminID)
	return nil
}

var _ IEventService = (*EventService)(nil)
