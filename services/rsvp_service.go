package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"gather.link/configs/configslog"
	"gather.link/models"
	"gather.link/monitoring"
	"gather.link/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError is a typed service error.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPEventNotFound RSVPServiceError = "event not found"
	ErrRSVPEventInactive RSVPServiceError = "event is not active"
	ErrRSVPNameRequired  RSVPServiceError = "name is required"
	ErrRSVPInvalidStatus RSVPServiceError = "rsvpStatus must be YES, NO or MAYBE"
	ErrRSVPInvalidEmail  RSVPServiceError = "email is not valid"
	ErrRSVPPersistFailed RSVPServiceError = "could not record RSVP"
)

// RSVPInput is the submission payload. All fields replace the stored values
// on an existing guest (full replace, not merge).
type RSVPInput struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	RSVPStatus models.RSVPStatus `json:"rsvpStatus"`
	MealChoice string            `json:"mealChoice"`
}

// Validate checks the payload shape. Runs before any store access.
func (in *RSVPInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrRSVPNameRequired
	}
	if !in.RSVPStatus.Valid() {
		return ErrRSVPInvalidStatus
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return ErrRSVPInvalidEmail
		}
	}
	return nil
}

// IRSVPService records guest responses.
type IRSVPService interface {
	SubmitRSVP(ctx context.Context, eventID uint, input RSVPInput) (*models.Guest, error)
}

// RSVPService upserts guests by contact identity and triggers best-effort
// seating for fresh confirmations.
type RSVPService struct {
	events  repositories.IEventRepository
	guests  repositories.IGuestRepository
	seating ISeatingService
}

func NewRSVPService() IRSVPService {
	return &RSVPService{
		events:  repositories.NewEventRepository(),
		guests:  repositories.NewGuestRepository(),
		seating: NewSeatingService(),
	}
}

func (s *RSVPService) SubmitRSVP(ctx context.Context, eventID uint, input RSVPInput) (*models.Guest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPEventNotFound
		}
		return nil, err
	}
	if !event.IsActive {
		return nil, ErrRSVPEventInactive
	}

	guest, err := s.lookupGuest(ctx, eventID, input)
	if err != nil {
		return nil, err
	}

	hadTable := guest != nil && guest.TableID != nil

	if guest != nil {
		guest.Name = input.Name
		guest.Email = input.Email
		guest.Phone = input.Phone
		guest.RSVPStatus = input.RSVPStatus
		guest.MealChoice = input.MealChoice
		if err := s.guests.Save(ctx, guest); err != nil {
			configslog.Log.Error("RSVP update failed", zap.Uint("eventID", eventID), zap.Uint("guestID", guest.ID), zap.Error(err))
			return nil, ErrRSVPPersistFailed
		}
	} else {
		guest = &models.Guest{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			RSVPStatus: input.RSVPStatus,
			MealChoice: input.MealChoice,
			EventID:    eventID,
		}
		if err := s.guests.Create(ctx, guest); err != nil {
			configslog.Log.Error("RSVP create failed", zap.Uint("eventID", eventID), zap.Error(err))
			return nil, ErrRSVPPersistFailed
		}
	}

	monitoring.RSVPRecorded.WithLabelValues(string(guest.RSVPStatus)).Inc()

	// The guest row is durable at this point. Seating failures are logged and
	// suppressed; the RSVP response stays a success.
	if input.RSVPStatus == models.RSVPStatusYes && !hadTable {
		if outcome := s.seating.AssignTableToGuest(ctx, guest); outcome.Failed() {
			configslog.Log.Warn("table assignment failed, guest left unseated",
				zap.Uint("guestID", guest.ID), zap.Uint("eventID", eventID), zap.Error(outcome.Err))
		}
	}

	return guest, nil
}

// lookupGuest finds the guest the submission belongs to, or nil when it is a
// new guest. With neither email nor phone there is no identity to match, so
// every such submission creates a fresh row.
func (s *RSVPService) lookupGuest(ctx context.Context, eventID uint, input RSVPInput) (*models.Guest, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, nil
	}
	guest, err := s.guests.FindByEmailOrPhone(ctx, eventID, input.Email, input.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return guest, nil
}

var _ IRSVPService = (*RSVPService)(nil)
